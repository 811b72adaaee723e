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

const orderColumns = `id, user_email, item_id, item_name, price,
	meeting_location, phone, paid, transaction_id, created_at`

// PostgresOrderRepository implements the OrderRepository interface
type PostgresOrderRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewOrderRepository creates a new PostgresOrderRepository
func NewOrderRepository(config *RepositoryConfig) repositories.OrderRepository {
	return &PostgresOrderRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new order record
func (r *PostgresOrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, r.tables.Orders, orderColumns)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		order.ID,
		order.UserEmail,
		order.ItemID,
		order.ItemName,
		order.Price,
		order.MeetingLocation,
		order.Phone,
		order.Paid,
		order.TransactionID,
		order.CreatedAt,
	)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("product %s: %w", order.ItemID, domain.ErrNotFound)
		}
		return fmt.Errorf("create order: %w", err)
	}

	return nil
}

// GetByID retrieves one order
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE id = $1
	`, orderColumns, r.tables.Orders)

	executor := GetExecutor(ctx, r.pool)
	order, err := scanOrder(executor.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	return order, nil
}

// ListByEmail returns all orders placed by the given buyer email
func (r *PostgresOrderRepository) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE user_email = $1
		ORDER BY created_at DESC
	`, orderColumns, r.tables.Orders)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return orders, nil
}

// MarkPaid transitions an order unpaid -> paid with the transaction id.
// The paid predicate makes the transition exactly-once.
func (r *PostgresOrderRepository) MarkPaid(ctx context.Context, id uuid.UUID, transactionID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET paid = true, transaction_id = $2
		WHERE id = $1 AND paid = false
	`, r.tables.Orders)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id, transactionID)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return &domain.ConflictError{
			Message:      fmt.Sprintf("order %s is already paid", id),
			ResourceType: "order",
			ResourceID:   id.String(),
		}
	}

	return nil
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	var order models.Order
	err := row.Scan(
		&order.ID,
		&order.UserEmail,
		&order.ItemID,
		&order.ItemName,
		&order.Price,
		&order.MeetingLocation,
		&order.Phone,
		&order.Paid,
		&order.TransactionID,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
