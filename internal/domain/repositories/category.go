package repositories

import (
	"context"

	"secondlook/internal/domain/models"
)

// CategoryRepository reads the seeded category catalog.
// Categories are seeded by cmd/seed and read-only through the API.
type CategoryRepository interface {
	// List returns all categories
	List(ctx context.Context) ([]models.Category, error)

	// Upsert inserts or updates a category by id (used by cmd/seed only)
	Upsert(ctx context.Context, category *models.Category) error
}
