package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is a checkout record created by a buyer for one product.
// Paid flips false -> true exactly once, by the payment cascade.
type Order struct {
	ID              uuid.UUID `json:"id" db:"id"`
	UserEmail       string    `json:"user_email" db:"user_email"`
	ItemID          uuid.UUID `json:"item_id" db:"item_id"`
	ItemName        string    `json:"item_name" db:"item_name"`
	Price           float64   `json:"price" db:"price"`
	MeetingLocation string    `json:"meeting_location" db:"meeting_location"`
	Phone           string    `json:"phone" db:"phone"`
	Paid            bool      `json:"paid" db:"paid"`
	TransactionID   string    `json:"transaction_id" db:"transaction_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
