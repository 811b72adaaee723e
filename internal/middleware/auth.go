package middleware

import (
	"net/http"
	"strings"

	"secondlook/internal/auth"
	"secondlook/internal/httputil"
)

// RequireAuth wraps a handler with bearer-token verification. A missing
// credential is 401 Unauthorized; a malformed, badly signed, or expired
// one is 403 Forbidden. On success the token's email is placed in the
// request context for the handler and the role gate behind it.
//
// Routes that additionally need a role pass the email to the role gate
// in their service layer - the role is never read from the token.
func RequireAuth(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing credential")
				return
			}

			token, ok := bearerToken(header)
			if !ok {
				httputil.RespondError(w, http.StatusForbidden, "malformed authorization header")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusForbidden, "invalid or expired credential")
				return
			}

			next.ServeHTTP(w, httputil.WithEmail(r, claims.GetEmail()))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" value.
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
