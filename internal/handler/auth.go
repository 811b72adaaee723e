package handler

import (
	"log/slog"
	"net/http"

	"secondlook/internal/auth"
	"secondlook/internal/httputil"
)

// AuthHandler issues access tokens
type AuthHandler struct {
	issuer auth.TokenIssuer
	logger *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(issuer auth.TokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		issuer: issuer,
		logger: logger,
	}
}

// IssueToken issues a credential for an existing account
// GET /jwt?email=
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		httputil.RespondError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	token, err := h.issuer.Issue(r.Context(), email)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"accessToken": token})
}
