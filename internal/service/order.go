package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"secondlook/internal/domain"
	"secondlook/internal/domain/models"
	"secondlook/internal/domain/repositories"
	"secondlook/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// orderService implements the OrderService interface
type orderService struct {
	orderRepo repositories.OrderRepository
	roleGate  services.RoleGate
	logger    *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repositories.OrderRepository,
	roleGate services.RoleGate,
	logger *slog.Logger,
) services.OrderService {
	return &orderService{
		orderRepo: orderRepo,
		roleGate:  roleGate,
		logger:    logger,
	}
}

// Create records a checkout. Guest checkout is allowed - the trust
// boundary here is deliberately open, matching the public storefront.
func (s *orderService) Create(ctx context.Context, req *services.CreateOrderRequest) (*models.Order, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	order := &models.Order{
		ID:              uuid.New(),
		UserEmail:       strings.ToLower(strings.TrimSpace(req.UserEmail)),
		ItemID:          req.ItemID,
		ItemName:        req.ItemName,
		Price:           req.Price,
		MeetingLocation: req.MeetingLocation,
		Phone:           req.Phone,
		Paid:            false,
		CreatedAt:       time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		"id", order.ID,
		"item_id", order.ItemID,
		"user_email", order.UserEmail,
	)

	return order, nil
}

// Get returns one order by id
func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// ListOwn returns the buyer's own orders. Requires the buyer role and
// that the authenticated email matches the requested one, so a buyer
// cannot browse another buyer's orders.
func (s *orderService) ListOwn(ctx context.Context, authEmail, email string) ([]models.Order, error) {
	if err := s.roleGate.RequireBuyer(ctx, authEmail); err != nil {
		return nil, err
	}
	if err := s.roleGate.RequireSelf(authEmail, email); err != nil {
		return nil, err
	}

	return s.orderRepo.ListByEmail(ctx, email)
}

// validateCreateRequest validates a create order request
func (s *orderService) validateCreateRequest(req *services.CreateOrderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserEmail, validation.Required, is.EmailFormat),
		validation.Field(&req.ItemID, validation.Required),
		validation.Field(&req.Price, validation.Required, validation.Min(0.01)),
	)
}
