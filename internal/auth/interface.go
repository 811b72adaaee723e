package auth

import (
	"context"

	"secondlook/internal/domain/models"
)

// TokenIssuer mints access tokens for existing accounts.
type TokenIssuer interface {
	// Issue looks up the user by email and, if the account exists,
	// returns a signed token binding that email with a 1-day expiry.
	// Unknown emails fail with domain.ErrForbidden - no token.
	Issue(ctx context.Context, email string) (string, error)
}

// TokenVerifier validates access tokens on incoming requests.
// This abstraction keeps the middleware agnostic to the signing scheme.
type TokenVerifier interface {
	// VerifyToken validates a token string and returns the parsed claims.
	// Malformed, wrongly signed, or expired tokens fail with domain.ErrForbidden.
	VerifyToken(tokenString string) (*models.AccessClaims, error)
}
