package services

import (
	"context"

	"github.com/google/uuid"
	"secondlook/internal/domain/models"
)

// RecordPaymentRequest is the payload confirming a completed charge
type RecordPaymentRequest struct {
	OrderID       uuid.UUID `json:"order_id"`
	ItemID        uuid.UUID `json:"item_id"`
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
}

// PaymentService defines the business logic for charge confirmation.
type PaymentService interface {
	// Record persists a payment and cascades its effects in one
	// transaction: the referenced order becomes paid with the
	// transaction id, the referenced product becomes sold with
	// advertising cleared. A second confirmation for the same order or
	// product returns a domain.ConflictError and leaves no partial state.
	Record(ctx context.Context, userEmail string, req *RecordPaymentRequest) (*models.Payment, error)

	// CreateIntent obtains a client-usable charge secret from the
	// payment processor for the given decimal price.
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// IntentCreator is the payment-processor bridge. The returned client
// secret is opaque and relayed verbatim to the caller.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64) (string, error)
}
