package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"secondlook/internal/domain"
	"secondlook/internal/domain/models"
	"secondlook/internal/domain/repositories"
	"secondlook/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// userService implements the UserService interface
type userService struct {
	userRepo repositories.UserRepository
	roleGate services.RoleGate
	logger   *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	roleGate services.RoleGate,
	logger *slog.Logger,
) services.UserService {
	return &userService{
		userRepo: userRepo,
		roleGate: roleGate,
		logger:   logger,
	}
}

// Register creates a new account. Self-registration is unauthenticated;
// the email uniqueness constraint is what prevents duplicates.
func (s *userService) Register(ctx context.Context, req *services.RegisterUserRequest) (*models.User, error) {
	if err := s.validateRegisterRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	user := &models.User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Role:      req.Role,
		Verified:  false,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		"id", user.ID,
		"email", user.Email,
		"role", user.Role,
	)

	return user, nil
}

// GetByEmail returns the user with the given email
func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// HasRole reports whether the email's current role matches. An unknown
// email is simply "no" - the role-check endpoints answer booleans, not errors.
func (s *userService) HasRole(ctx context.Context, email string, role models.Role) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return user.Role == role, nil
}

// ListByRole returns all users holding the given role
func (s *userService) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return s.userRepo.ListByRole(ctx, role)
}

// Verify marks the target user as verified. Admin only.
func (s *userService) Verify(ctx context.Context, adminEmail string, id uuid.UUID) error {
	if err := s.roleGate.RequireAdmin(ctx, adminEmail); err != nil {
		return err
	}

	if err := s.userRepo.SetVerified(ctx, id, true); err != nil {
		return err
	}

	s.logger.Info("user verified",
		"id", id,
		"admin", adminEmail,
	)

	return nil
}

// Delete removes the target user. Admin only.
func (s *userService) Delete(ctx context.Context, adminEmail string, id uuid.UUID) error {
	if err := s.roleGate.RequireAdmin(ctx, adminEmail); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted",
		"id", id,
		"admin", adminEmail,
	)

	return nil
}

// validateRegisterRequest validates a registration request
func (s *userService) validateRegisterRequest(req *services.RegisterUserRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&req.Email, validation.Required, is.EmailFormat),
		validation.Field(&req.Role, validation.Required, validation.By(validateRole)),
	)
}

// validateRole checks the role is one of the marketplace roles
func validateRole(value interface{}) error {
	role, ok := value.(models.Role)
	if !ok {
		return fmt.Errorf("role must be a string")
	}
	if !role.Valid() {
		return fmt.Errorf("role must be one of buyer, seller, admin")
	}
	return nil
}
