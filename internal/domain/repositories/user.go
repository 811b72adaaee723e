package repositories

import (
	"context"

	"github.com/google/uuid"
	"secondlook/internal/domain/models"
)

// UserRepository persists marketplace accounts.
// Email is the unique identity key; Create surfaces duplicates as
// domain.ConflictError.
type UserRepository interface {
	// Create inserts a new user record
	Create(ctx context.Context, user *models.User) error

	// GetByEmail returns the user with the given email, or domain.ErrNotFound
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// ListByRole returns all users holding the given role
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)

	// SetVerified marks a user as verified
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error

	// Delete removes a user record
	Delete(ctx context.Context, id uuid.UUID) error
}
