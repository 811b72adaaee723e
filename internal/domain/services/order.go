package services

import (
	"context"

	"github.com/google/uuid"
	"secondlook/internal/domain/models"
)

// CreateOrderRequest is the payload for checkout initiation
type CreateOrderRequest struct {
	UserEmail       string    `json:"user_email"`
	ItemID          uuid.UUID `json:"item_id"`
	ItemName        string    `json:"item_name"`
	Price           float64   `json:"price"`
	MeetingLocation string    `json:"meeting_location"`
	Phone           string    `json:"phone"`
}

// OrderService defines the business logic for checkout records
type OrderService interface {
	// Create records a checkout. Unauthenticated (guest checkout).
	Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, error)

	// Get returns one order by id
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)

	// ListOwn returns the buyer's own orders. Requires the buyer role
	// and authEmail == email.
	ListOwn(ctx context.Context, authEmail, email string) ([]models.Order, error)
}
