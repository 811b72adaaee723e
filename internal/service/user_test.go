package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"secondlook/internal/domain"
	"secondlook/internal/domain/models"
	"secondlook/internal/domain/services"
	serviceauth "secondlook/internal/service/auth"
)

func TestRegister(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, serviceauth.NewLiveRoleGate(users), testLogger())
	ctx := context.Background()

	user, err := svc.Register(ctx, &services.RegisterUserRequest{
		Name:  "Alice",
		Email: "Alice@X.com",
		Role:  models.RoleSeller,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "alice@x.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}
	if user.Verified {
		t.Error("new accounts must start unverified")
	}

	// Email is a unique key: registering it again conflicts.
	_, err = svc.Register(ctx, &services.RegisterUserRequest{
		Name:  "Alice Again",
		Email: "alice@x.com",
		Role:  models.RoleBuyer,
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate register err = %v, want ErrConflict", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, serviceauth.NewLiveRoleGate(users), testLogger())

	tests := []struct {
		name string
		req  *services.RegisterUserRequest
	}{
		{name: "missing email", req: &services.RegisterUserRequest{Name: "A", Role: models.RoleBuyer}},
		{name: "bad email", req: &services.RegisterUserRequest{Name: "A", Email: "not-an-email", Role: models.RoleBuyer}},
		{name: "bad role", req: &services.RegisterUserRequest{Name: "A", Email: "a@x.com", Role: "superuser"}},
		{name: "missing name", req: &services.RegisterUserRequest{Email: "a@x.com", Role: models.RoleBuyer}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestHasRole(t *testing.T) {
	users := newMemUserRepo(
		&models.User{ID: uuid.New(), Email: "admin@x.com", Role: models.RoleAdmin},
	)
	svc := NewUserService(users, serviceauth.NewLiveRoleGate(users), testLogger())
	ctx := context.Background()

	tests := []struct {
		name  string
		email string
		role  models.Role
		want  bool
	}{
		{name: "admin is admin", email: "admin@x.com", role: models.RoleAdmin, want: true},
		{name: "admin is not buyer", email: "admin@x.com", role: models.RoleBuyer, want: false},
		{name: "unknown email is nothing", email: "nonexistent@x.com", role: models.RoleAdmin, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.HasRole(ctx, tt.email, tt.role)
			if err != nil {
				t.Fatalf("HasRole: %v", err)
			}
			if got != tt.want {
				t.Errorf("HasRole = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyAndDeleteAdminOnly(t *testing.T) {
	target := &models.User{ID: uuid.New(), Email: "seller@x.com", Role: models.RoleSeller}
	users := newMemUserRepo(
		&models.User{ID: uuid.New(), Email: "admin@x.com", Role: models.RoleAdmin},
		target,
	)
	svc := NewUserService(users, serviceauth.NewLiveRoleGate(users), testLogger())
	ctx := context.Background()

	if err := svc.Verify(ctx, "seller@x.com", target.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("non-admin verify err = %v, want ErrForbidden", err)
	}

	if err := svc.Verify(ctx, "admin@x.com", target.ID); err != nil {
		t.Fatalf("admin verify: %v", err)
	}
	if !target.Verified {
		t.Error("verification flag not set")
	}

	if err := svc.Delete(ctx, "seller@x.com", target.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("non-admin delete err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(ctx, "admin@x.com", target.ID); err != nil {
		t.Errorf("admin delete: %v", err)
	}
}
