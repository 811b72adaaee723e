package repositories

import (
	"context"

	"github.com/google/uuid"
	"secondlook/internal/domain/models"
)

// ProductRepository persists listings.
type ProductRepository interface {
	// Create inserts a new product record
	Create(ctx context.Context, product *models.Product) error

	// GetByID returns the product with the given id, or domain.ErrNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// ListByCategory returns available products in a category
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error)

	// ListBySeller returns all of a seller's products
	ListBySeller(ctx context.Context, sellerEmail string) ([]models.Product, error)

	// ListAdvertised returns available products flagged for advertising
	ListAdvertised(ctx context.Context) ([]models.Product, error)

	// ListReported returns products flagged as reported
	ListReported(ctx context.Context) ([]models.Product, error)

	// ListRecent returns the most recently created available products
	ListRecent(ctx context.Context, limit int) ([]models.Product, error)

	// SetAdvertise sets the advertise flag
	SetAdvertise(ctx context.Context, id uuid.UUID, advertise bool) error

	// SetReported sets the reported flag
	SetReported(ctx context.Context, id uuid.UUID, reported bool) error

	// MarkSold transitions a product available -> sold and clears the
	// advertise flag. Returns domain.ErrConflict if the product is not
	// available, making the transition exactly-once under concurrency.
	MarkSold(ctx context.Context, id uuid.UUID) error

	// Delete removes a product record
	Delete(ctx context.Context, id uuid.UUID) error
}
