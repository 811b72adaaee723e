package services

import (
	"context"

	"github.com/google/uuid"
	"secondlook/internal/domain/models"
)

// RegisterUserRequest is the payload for self-registration
type RegisterUserRequest struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// UserService defines the business logic for account operations
type UserService interface {
	// Register creates a new account. Email is unique; a duplicate
	// registration returns a domain.ConflictError.
	Register(ctx context.Context, req *RegisterUserRequest) (*models.User, error)

	// GetByEmail returns the user with the given email
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// HasRole reports whether the user with the given email currently
	// holds the role. Unknown emails report false, not an error.
	HasRole(ctx context.Context, email string, role models.Role) (bool, error)

	// ListByRole returns all users holding the given role
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)

	// Verify marks the target user as verified. Admin only.
	Verify(ctx context.Context, adminEmail string, id uuid.UUID) error

	// Delete removes the target user. Admin only.
	Delete(ctx context.Context, adminEmail string, id uuid.UUID) error
}
