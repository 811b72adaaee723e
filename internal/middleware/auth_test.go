package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"secondlook/internal/domain"
	"secondlook/internal/domain/models"
	"secondlook/internal/httputil"
)

type stubVerifier struct {
	email string
}

func (v *stubVerifier) VerifyToken(tokenString string) (*models.AccessClaims, error) {
	if tokenString != "good-token" {
		return nil, domain.ErrForbidden
	}
	return &models.AccessClaims{Email: v.email}, nil
}

func TestRequireAuth(t *testing.T) {
	var seenEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenEmail = httputil.GetEmail(r)
		w.WriteHeader(http.StatusOK)
	})
	protected := RequireAuth(&stubVerifier{email: "a@x.com"})(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantEmail  string
	}{
		{name: "no credential", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", authHeader: "Basic abc", wantStatus: http.StatusForbidden},
		{name: "empty bearer", authHeader: "Bearer ", wantStatus: http.StatusForbidden},
		{name: "bad token", authHeader: "Bearer bad-token", wantStatus: http.StatusForbidden},
		{name: "valid token", authHeader: "Bearer good-token", wantStatus: http.StatusOK, wantEmail: "a@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenEmail = ""
			r := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if seenEmail != tt.wantEmail {
				t.Errorf("email in context = %q, want %q", seenEmail, tt.wantEmail)
			}
		})
	}
}
