package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"secondlook/internal/domain"
	"secondlook/internal/domain/models"
	"secondlook/internal/domain/repositories"
	"secondlook/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// RecentProductLimit is how many listings the recent-products feed returns.
const RecentProductLimit = 6

// productService implements the ProductService interface
type productService struct {
	productRepo repositories.ProductRepository
	roleGate    services.RoleGate
	logger      *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repositories.ProductRepository,
	roleGate services.RoleGate,
	logger *slog.Logger,
) services.ProductService {
	return &productService{
		productRepo: productRepo,
		roleGate:    roleGate,
		logger:      logger,
	}
}

// Create lists a new product owned by the authenticated seller
func (s *productService) Create(ctx context.Context, sellerEmail string, req *services.CreateProductRequest) (*models.Product, error) {
	if err := s.roleGate.RequireSeller(ctx, sellerEmail); err != nil {
		return nil, err
	}

	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	product := &models.Product{
		ID:            uuid.New(),
		CategoryID:    req.CategoryID,
		SellerEmail:   sellerEmail,
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Location:      req.Location,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		YearsUsed:     req.YearsUsed,
		Condition:     req.Condition,
		Phone:         req.Phone,
		ImageURL:      req.ImageURL,
		Status:        models.ProductAvailable,
		Advertise:     false,
		Reported:      false,
		CreatedAt:     time.Now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product listed",
		"id", product.ID,
		"seller", sellerEmail,
		"category_id", product.CategoryID,
	)

	return product, nil
}

// Get returns one product by id
func (s *productService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// ListByCategory returns available products in a category
func (s *productService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	return s.productRepo.ListByCategory(ctx, categoryID)
}

// ListOwn returns the authenticated seller's products
func (s *productService) ListOwn(ctx context.Context, authEmail, email string) ([]models.Product, error) {
	if err := s.roleGate.RequireSeller(ctx, authEmail); err != nil {
		return nil, err
	}
	if err := s.roleGate.RequireSelf(authEmail, email); err != nil {
		return nil, err
	}

	return s.productRepo.ListBySeller(ctx, email)
}

// ListAdvertised returns available products flagged for advertising
func (s *productService) ListAdvertised(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.ListAdvertised(ctx)
}

// ListReported returns reported products
func (s *productService) ListReported(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.ListReported(ctx)
}

// ListRecent returns the most recent available products
func (s *productService) ListRecent(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = RecentProductLimit
	}
	return s.productRepo.ListRecent(ctx, limit)
}

// Advertise flags the seller's own product for advertising
func (s *productService) Advertise(ctx context.Context, sellerEmail string, id uuid.UUID) error {
	if err := s.requireOwnership(ctx, sellerEmail, id); err != nil {
		return err
	}

	if err := s.productRepo.SetAdvertise(ctx, id, true); err != nil {
		return err
	}

	s.logger.Info("product advertised", "id", id, "seller", sellerEmail)
	return nil
}

// Report flags a product as reported. Deliberately unauthenticated:
// any caller may flag a listing for moderation.
func (s *productService) Report(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.SetReported(ctx, id, true); err != nil {
		return err
	}

	s.logger.Info("product reported", "id", id)
	return nil
}

// ClearReport removes the reported flag. Admin only.
func (s *productService) ClearReport(ctx context.Context, adminEmail string, id uuid.UUID) error {
	if err := s.roleGate.RequireAdmin(ctx, adminEmail); err != nil {
		return err
	}

	if err := s.productRepo.SetReported(ctx, id, false); err != nil {
		return err
	}

	s.logger.Info("product report cleared", "id", id, "admin", adminEmail)
	return nil
}

// DeleteOwn removes the seller's own product
func (s *productService) DeleteOwn(ctx context.Context, sellerEmail string, id uuid.UUID) error {
	if err := s.requireOwnership(ctx, sellerEmail, id); err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("product deleted by seller", "id", id, "seller", sellerEmail)
	return nil
}

// DeleteAny removes any product. Admin only.
func (s *productService) DeleteAny(ctx context.Context, adminEmail string, id uuid.UUID) error {
	if err := s.roleGate.RequireAdmin(ctx, adminEmail); err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("product deleted by admin", "id", id, "admin", adminEmail)
	return nil
}

// requireOwnership checks the seller role and then that the listing's
// recorded seller matches the authenticated email. The role alone is
// not enough: a seller must not touch another seller's listing.
func (s *productService) requireOwnership(ctx context.Context, sellerEmail string, id uuid.UUID) error {
	if err := s.roleGate.RequireSeller(ctx, sellerEmail); err != nil {
		return err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product.SellerEmail != sellerEmail {
		return fmt.Errorf("product %s is not owned by %s: %w", id, sellerEmail, domain.ErrForbidden)
	}

	return nil
}

// validateCreateRequest validates a create product request
func (s *productService) validateCreateRequest(req *services.CreateProductRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.CategoryID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Price, validation.Required, validation.Min(0.01)),
		validation.Field(&req.OriginalPrice, validation.Min(0.0)),
		validation.Field(&req.YearsUsed, validation.Min(0)),
	)
}
