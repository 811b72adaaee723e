package repositories

import (
	"context"

	"secondlook/internal/domain/models"
)

// PaymentRepository persists confirmed charges. Append-only.
type PaymentRepository interface {
	// Create inserts a new payment record
	Create(ctx context.Context, payment *models.Payment) error
}
