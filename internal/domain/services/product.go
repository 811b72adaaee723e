package services

import (
	"context"

	"github.com/google/uuid"
	"secondlook/internal/domain/models"
)

// CreateProductRequest is the payload for creating a listing
type CreateProductRequest struct {
	CategoryID    uuid.UUID `json:"category_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price"`
	YearsUsed     int       `json:"years_used"`
	Condition     string    `json:"condition"`
	Phone         string    `json:"phone"`
	ImageURL      string    `json:"image_url"`
}

// ProductService defines the business logic for listing operations.
// Mutations are gated on the live role of the authenticated email;
// seller mutations additionally require ownership (the listing's
// seller_email must equal the authenticated email).
type ProductService interface {
	// Create lists a new product owned by the authenticated seller
	Create(ctx context.Context, sellerEmail string, req *CreateProductRequest) (*models.Product, error)

	// Get returns one product by id
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// ListByCategory returns available products in a category
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error)

	// ListOwn returns the authenticated seller's products. Fails with
	// domain.ErrForbidden when authEmail does not match email.
	ListOwn(ctx context.Context, authEmail, email string) ([]models.Product, error)

	// ListAdvertised returns available products flagged for advertising
	ListAdvertised(ctx context.Context) ([]models.Product, error)

	// ListReported returns reported products
	ListReported(ctx context.Context) ([]models.Product, error)

	// ListRecent returns the most recent available products
	ListRecent(ctx context.Context, limit int) ([]models.Product, error)

	// Advertise flags the authenticated seller's own product for advertising
	Advertise(ctx context.Context, sellerEmail string, id uuid.UUID) error

	// Report flags a product as reported. Open to any caller (public flagging).
	Report(ctx context.Context, id uuid.UUID) error

	// ClearReport removes the reported flag. Admin only.
	ClearReport(ctx context.Context, adminEmail string, id uuid.UUID) error

	// DeleteOwn removes the authenticated seller's own product
	DeleteOwn(ctx context.Context, sellerEmail string, id uuid.UUID) error

	// DeleteAny removes any product. Admin only, typically for reported listings.
	DeleteAny(ctx context.Context, adminEmail string, id uuid.UUID) error
}
