package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"secondlook/internal/domain"
	"secondlook/internal/domain/models"
	"secondlook/internal/domain/repositories"
)

// productColumns is the select list shared by all product queries,
// in scanProduct order.
const productColumns = `id, category_id, seller_email, name, description, location,
	price, original_price, years_used, condition, phone, image_url,
	status, advertise, reported, created_at`

// PostgresProductRepository implements the ProductRepository interface
type PostgresProductRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewProductRepository creates a new PostgresProductRepository
func NewProductRepository(config *RepositoryConfig) repositories.ProductRepository {
	return &PostgresProductRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new product record
func (r *PostgresProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, r.tables.Products, productColumns)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		product.ID,
		product.CategoryID,
		product.SellerEmail,
		product.Name,
		product.Description,
		product.Location,
		product.Price,
		product.OriginalPrice,
		product.YearsUsed,
		product.Condition,
		product.Phone,
		product.ImageURL,
		product.Status,
		product.Advertise,
		product.Reported,
		product.CreatedAt,
	)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("category %s: %w", product.CategoryID, domain.ErrNotFound)
		}
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

// GetByID retrieves one product
func (r *PostgresProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE id = $1
	`, productColumns, r.tables.Products)

	executor := GetExecutor(ctx, r.pool)
	product, err := scanProduct(executor.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

// ListByCategory returns available products in a category
func (r *PostgresProductRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE category_id = $1 AND status = $2
		ORDER BY created_at DESC
	`, productColumns, r.tables.Products)

	return r.list(ctx, query, categoryID, models.ProductAvailable)
}

// ListBySeller returns all of a seller's products
func (r *PostgresProductRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE seller_email = $1
		ORDER BY created_at DESC
	`, productColumns, r.tables.Products)

	return r.list(ctx, query, sellerEmail)
}

// ListAdvertised returns available products flagged for advertising
func (r *PostgresProductRepository) ListAdvertised(ctx context.Context) ([]models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE advertise = true AND status = $1
		ORDER BY created_at DESC
	`, productColumns, r.tables.Products)

	return r.list(ctx, query, models.ProductAvailable)
}

// ListReported returns products flagged as reported
func (r *PostgresProductRepository) ListReported(ctx context.Context) ([]models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE reported = true
		ORDER BY created_at DESC
	`, productColumns, r.tables.Products)

	return r.list(ctx, query)
}

// ListRecent returns the most recently created available products
func (r *PostgresProductRepository) ListRecent(ctx context.Context, limit int) ([]models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, productColumns, r.tables.Products)

	return r.list(ctx, query, models.ProductAvailable, limit)
}

// SetAdvertise sets the advertise flag
func (r *PostgresProductRepository) SetAdvertise(ctx context.Context, id uuid.UUID, advertise bool) error {
	return r.setFlag(ctx, "advertise", id, advertise)
}

// SetReported sets the reported flag
func (r *PostgresProductRepository) SetReported(ctx context.Context, id uuid.UUID, reported bool) error {
	return r.setFlag(ctx, "reported", id, reported)
}

// MarkSold transitions a product available -> sold and clears
// advertising. The status predicate makes the transition exactly-once:
// a concurrent second caller matches zero rows and gets ErrConflict.
func (r *PostgresProductRepository) MarkSold(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $2, advertise = false
		WHERE id = $1 AND status = $3
	`, r.tables.Products)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id, models.ProductSold, models.ProductAvailable)
	if err != nil {
		return fmt.Errorf("mark product sold: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish an absent product from an already-sold one.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return &domain.ConflictError{
			Message:      fmt.Sprintf("product %s is already sold", id),
			ResourceType: "product",
			ResourceID:   id.String(),
		}
	}

	return nil
}

// Delete removes a product record
func (r *PostgresProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE id = $1
	`, r.tables.Products)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *PostgresProductRepository) setFlag(ctx context.Context, column string, id uuid.UUID, value bool) error {
	// column is one of the fixed flag names above, never caller input
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2 WHERE id = $1
	`, r.tables.Products, column)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id, value)
	if err != nil {
		return fmt.Errorf("set product %s: %w", column, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *PostgresProductRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Product, error) {
	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var product models.Product
	err := row.Scan(
		&product.ID,
		&product.CategoryID,
		&product.SellerEmail,
		&product.Name,
		&product.Description,
		&product.Location,
		&product.Price,
		&product.OriginalPrice,
		&product.YearsUsed,
		&product.Condition,
		&product.Phone,
		&product.ImageURL,
		&product.Status,
		&product.Advertise,
		&product.Reported,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
