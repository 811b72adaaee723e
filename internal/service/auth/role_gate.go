package auth

import (
	"context"
	"errors"
	"fmt"

	"secondlook/internal/domain"
	"secondlook/internal/domain/models"
	"secondlook/internal/domain/repositories"
	"secondlook/internal/domain/services"
)

// LiveRoleGate implements RoleGate by reading the persisted role on
// every check. Tokens carry no role claim, so a demoted admin or a
// deleted account loses access on the very next request.
type LiveRoleGate struct {
	userRepo repositories.UserRepository
}

// NewLiveRoleGate creates a role gate backed by the user store.
func NewLiveRoleGate(userRepo repositories.UserRepository) services.RoleGate {
	return &LiveRoleGate{userRepo: userRepo}
}

// RequireAdmin checks that email's current role is admin
func (g *LiveRoleGate) RequireAdmin(ctx context.Context, email string) error {
	return g.requireRole(ctx, email, models.RoleAdmin)
}

// RequireSeller checks that email's current role is seller
func (g *LiveRoleGate) RequireSeller(ctx context.Context, email string) error {
	return g.requireRole(ctx, email, models.RoleSeller)
}

// RequireBuyer checks that email's current role is buyer
func (g *LiveRoleGate) RequireBuyer(ctx context.Context, email string) error {
	return g.requireRole(ctx, email, models.RoleBuyer)
}

// RequireSelf checks that the authenticated email matches the email
// whose resources are requested, so one user cannot read another's
// private resources even when both hold the same role.
func (g *LiveRoleGate) RequireSelf(authEmail, email string) error {
	if authEmail == "" || authEmail != email {
		return fmt.Errorf("access denied to resources of %s: %w", email, domain.ErrForbidden)
	}
	return nil
}

func (g *LiveRoleGate) requireRole(ctx context.Context, email string, role models.Role) error {
	user, err := g.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Fail closed: an account deleted after token issuance must be
		// refused, not surface a lookup fault.
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no account for %s: %w", email, domain.ErrForbidden)
		}
		return fmt.Errorf("check role for %s: %w", email, err)
	}

	if user.Role != role {
		return fmt.Errorf("%s role required: %w", role, domain.ErrForbidden)
	}

	return nil
}
