package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"secondlook/internal/domain/models"
	"secondlook/internal/domain/repositories"
)

// PostgresCategoryRepository implements the CategoryRepository interface
type PostgresCategoryRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewCategoryRepository creates a new PostgresCategoryRepository
func NewCategoryRepository(config *RepositoryConfig) repositories.CategoryRepository {
	return &PostgresCategoryRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// List retrieves all categories
func (r *PostgresCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query := fmt.Sprintf(`
		SELECT id, name FROM %s ORDER BY name
	`, r.tables.Categories)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

// Upsert inserts or updates a category by id. Only cmd/seed writes
// categories; the API reads them.
func (r *PostgresCategoryRepository) Upsert(ctx context.Context, category *models.Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
	`, r.tables.Categories)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, category.ID, category.Name); err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}

	return nil
}
