package repositories

import (
	"context"

	"github.com/google/uuid"
	"secondlook/internal/domain/models"
)

// OrderRepository persists checkout records.
type OrderRepository interface {
	// Create inserts a new order record
	Create(ctx context.Context, order *models.Order) error

	// GetByID returns the order with the given id, or domain.ErrNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)

	// ListByEmail returns all orders placed by the given buyer email
	ListByEmail(ctx context.Context, email string) ([]models.Order, error)

	// MarkPaid transitions an order unpaid -> paid recording the
	// transaction id. Returns domain.ErrConflict if the order is
	// already paid, domain.ErrNotFound if it does not exist.
	MarkPaid(ctx context.Context, id uuid.UUID, transactionID string) error
}
