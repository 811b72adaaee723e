package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is the append-only record of a confirmed charge.
// Exactly one payment may reference a given order and product; the
// cascade that inserts it also marks the order paid and the product sold.
type Payment struct {
	ID            uuid.UUID `json:"id" db:"id"`
	OrderID       uuid.UUID `json:"order_id" db:"order_id"`
	ItemID        uuid.UUID `json:"item_id" db:"item_id"`
	TransactionID string    `json:"transaction_id" db:"transaction_id"`
	Amount        float64   `json:"amount" db:"amount"`
	UserEmail     string    `json:"user_email" db:"user_email"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
