package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"secondlook/internal/domain"
	"secondlook/internal/domain/models"
	"secondlook/internal/domain/repositories"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

// JWTManager issues and verifies HS256 tokens signed with a shared
// secret. Tokens embed only the email identity; the persisted role is
// re-checked per request by the role gate, so a stale token can never
// carry a stale role.
type JWTManager struct {
	secret   []byte
	userRepo repositories.UserRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewJWTManager creates a JWT manager signing with the given secret.
func NewJWTManager(secret string, userRepo repositories.UserRepository, logger *slog.Logger) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("token signing secret cannot be empty")
	}

	return &JWTManager{
		secret:   []byte(secret),
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Issue mints a token for an existing account. The account lookup is
// live: an email with no user record gets a refusal, not a token.
func (m *JWTManager) Issue(ctx context.Context, email string) (string, error) {
	user, err := m.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			m.logger.Debug("token refused for unknown email", "email", email)
			return "", fmt.Errorf("no account for %s: %w", email, domain.ErrForbidden)
		}
		return "", fmt.Errorf("look up user for token: %w", err)
	}

	now := m.now()
	claims := &models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		Email: user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken validates a token and extracts its claims.
func (m *JWTManager) VerifyToken(tokenString string) (*models.AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.AccessClaims{}, m.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		m.logger.Debug("token parse failed", "error", err.Error())
		return nil, domain.ErrForbidden
	}

	if !token.Valid {
		return nil, domain.ErrForbidden
	}

	claims, ok := token.Claims.(*models.AccessClaims)
	if !ok {
		m.logger.Error("failed to extract claims from token")
		return nil, domain.ErrForbidden
	}

	if claims.GetEmail() == "" {
		m.logger.Debug("token missing email claim")
		return nil, domain.ErrForbidden
	}

	return claims, nil
}

// keyFunc pins the algorithm before releasing the signing key,
// preventing algorithm confusion attacks.
func (m *JWTManager) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %s", token.Method.Alg())
	}
	return m.secret, nil
}
