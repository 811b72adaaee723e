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

func marketplaceUsers() *memUserRepo {
	return newMemUserRepo(
		&models.User{ID: uuid.New(), Email: "admin@x.com", Role: models.RoleAdmin},
		&models.User{ID: uuid.New(), Email: "alice@x.com", Role: models.RoleSeller},
		&models.User{ID: uuid.New(), Email: "bob@x.com", Role: models.RoleSeller},
		&models.User{ID: uuid.New(), Email: "buyer@x.com", Role: models.RoleBuyer},
	)
}

func TestCreateProduct(t *testing.T) {
	users := marketplaceUsers()
	products := newMemProductRepo()
	svc := NewProductService(products, serviceauth.NewLiveRoleGate(users), testLogger())

	req := &services.CreateProductRequest{
		CategoryID: uuid.New(),
		Name:       "Lens",
		Price:      120,
	}

	product, err := svc.Create(context.Background(), "alice@x.com", req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if product.SellerEmail != "alice@x.com" {
		t.Errorf("seller_email = %q, want the authenticated seller", product.SellerEmail)
	}
	if product.Status != models.ProductAvailable {
		t.Errorf("status = %q, want available", product.Status)
	}

	stored, err := svc.Get(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Name != "Lens" {
		t.Errorf("stored name = %q, want Lens", stored.Name)
	}

	// Buyers cannot list products.
	if _, err := svc.Create(context.Background(), "buyer@x.com", req); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("buyer create err = %v, want ErrForbidden", err)
	}
}

func TestProductOwnership(t *testing.T) {
	users := marketplaceUsers()
	aliceProduct := &models.Product{
		ID:          uuid.New(),
		SellerEmail: "alice@x.com",
		Status:      models.ProductAvailable,
	}
	products := newMemProductRepo(aliceProduct)
	svc := NewProductService(products, serviceauth.NewLiveRoleGate(users), testLogger())
	ctx := context.Background()

	// Bob holds the seller role but does not own Alice's listing.
	if err := svc.Advertise(ctx, "bob@x.com", aliceProduct.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("foreign advertise err = %v, want ErrForbidden", err)
	}
	if err := svc.DeleteOwn(ctx, "bob@x.com", aliceProduct.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("foreign delete err = %v, want ErrForbidden", err)
	}

	if err := svc.Advertise(ctx, "alice@x.com", aliceProduct.ID); err != nil {
		t.Errorf("own advertise err = %v", err)
	}
	if !aliceProduct.Advertise {
		t.Error("advertise flag not set")
	}

	if err := svc.DeleteOwn(ctx, "alice@x.com", aliceProduct.ID); err != nil {
		t.Errorf("own delete err = %v", err)
	}
}

func TestProductModeration(t *testing.T) {
	users := marketplaceUsers()
	product := &models.Product{ID: uuid.New(), SellerEmail: "alice@x.com", Status: models.ProductAvailable}
	products := newMemProductRepo(product)
	svc := NewProductService(products, serviceauth.NewLiveRoleGate(users), testLogger())
	ctx := context.Background()

	// Reporting is open to anyone.
	if err := svc.Report(ctx, product.ID); err != nil {
		t.Fatalf("Report: %v", err)
	}
	if !product.Reported {
		t.Fatal("reported flag not set")
	}

	// Only admins clear reports or delete arbitrary listings.
	if err := svc.ClearReport(ctx, "alice@x.com", product.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("seller clear-report err = %v, want ErrForbidden", err)
	}
	if err := svc.ClearReport(ctx, "admin@x.com", product.ID); err != nil {
		t.Errorf("admin clear-report err = %v", err)
	}
	if product.Reported {
		t.Error("reported flag still set after admin cleared it")
	}

	if err := svc.DeleteAny(ctx, "buyer@x.com", product.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("buyer admin-delete err = %v, want ErrForbidden", err)
	}
	if err := svc.DeleteAny(ctx, "admin@x.com", product.ID); err != nil {
		t.Errorf("admin delete err = %v", err)
	}
}

func TestListOwnRequiresEmailMatch(t *testing.T) {
	users := marketplaceUsers()
	products := newMemProductRepo(
		&models.Product{ID: uuid.New(), SellerEmail: "alice@x.com", Status: models.ProductAvailable},
	)
	svc := NewProductService(products, serviceauth.NewLiveRoleGate(users), testLogger())
	ctx := context.Background()

	own, err := svc.ListOwn(ctx, "alice@x.com", "alice@x.com")
	if err != nil {
		t.Fatalf("ListOwn: %v", err)
	}
	if len(own) != 1 {
		t.Errorf("listings = %d, want 1", len(own))
	}

	// Same role, different email: denied.
	if _, err := svc.ListOwn(ctx, "bob@x.com", "alice@x.com"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}

func TestCreateProductValidation(t *testing.T) {
	users := marketplaceUsers()
	svc := NewProductService(newMemProductRepo(), serviceauth.NewLiveRoleGate(users), testLogger())

	tests := []struct {
		name string
		req  *services.CreateProductRequest
	}{
		{name: "missing name", req: &services.CreateProductRequest{CategoryID: uuid.New(), Price: 10}},
		{name: "missing category", req: &services.CreateProductRequest{Name: "Lens", Price: 10}},
		{name: "zero price", req: &services.CreateProductRequest{CategoryID: uuid.New(), Name: "Lens"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "alice@x.com", tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}
