package httputil

import (
	"context"
	"net/http"
)

// Context key type to avoid collisions
type contextKey string

const (
	emailKey contextKey = "authEmail"
)

// WithEmail adds the authenticated email to the request context
func WithEmail(r *http.Request, email string) *http.Request {
	ctx := context.WithValue(r.Context(), emailKey, email)
	return r.WithContext(ctx)
}

// GetEmail retrieves the authenticated email from context, returns
// empty string if the request carried no credential
func GetEmail(r *http.Request) string {
	email, _ := r.Context().Value(emailKey).(string)
	return email
}
