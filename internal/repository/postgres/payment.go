package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"secondlook/internal/domain"
	"secondlook/internal/domain/models"
	"secondlook/internal/domain/repositories"
)

// PostgresPaymentRepository implements the PaymentRepository interface
type PostgresPaymentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewPaymentRepository creates a new PostgresPaymentRepository
func NewPaymentRepository(config *RepositoryConfig) repositories.PaymentRepository {
	return &PostgresPaymentRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a payment record. A unique index on order_id keeps the
// collection append-once per order even outside the cascade transaction.
func (r *PostgresPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, order_id, item_id, transaction_id, amount, user_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.Payments)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		payment.ID,
		payment.OrderID,
		payment.ItemID,
		payment.TransactionID,
		payment.Amount,
		payment.UserEmail,
		payment.CreatedAt,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("payment for order %s already recorded", payment.OrderID),
				ResourceType: "payment",
				ResourceID:   payment.OrderID.String(),
			}
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("order %s: %w", payment.OrderID, domain.ErrNotFound)
		}
		return fmt.Errorf("create payment: %w", err)
	}

	return nil
}
