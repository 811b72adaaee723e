package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"secondlook/internal/domain"
	"secondlook/internal/domain/models"
	"secondlook/internal/domain/repositories"
	"secondlook/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// paymentService implements the PaymentService interface
type paymentService struct {
	paymentRepo repositories.PaymentRepository
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	txManager   repositories.TransactionManager
	intents     services.IntentCreator
	logger      *slog.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	txManager repositories.TransactionManager,
	intents services.IntentCreator,
	logger *slog.Logger,
) services.PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		txManager:   txManager,
		intents:     intents,
		logger:      logger,
	}
}

// Record persists a confirmed charge and cascades its effects inside
// one transaction: the payment row is inserted, the order becomes
// paid with the transaction id, the product becomes sold with
// advertising cleared. The order and product updates are conditional
// on their current state, so a concurrent duplicate confirmation hits
// zero rows, aborts with a conflict, and rolls back - at most one
// sold transition per product, one paid transition per order.
func (s *paymentService) Record(ctx context.Context, userEmail string, req *services.RecordPaymentRequest) (*models.Payment, error) {
	if err := s.validateRecordRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	payment := &models.Payment{
		ID:            uuid.New(),
		OrderID:       req.OrderID,
		ItemID:        req.ItemID,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		UserEmail:     userEmail,
		CreatedAt:     time.Now(),
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.paymentRepo.Create(txCtx, payment); err != nil {
			return err
		}
		if err := s.orderRepo.MarkPaid(txCtx, req.OrderID, req.TransactionID); err != nil {
			return err
		}
		return s.productRepo.MarkSold(txCtx, req.ItemID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		"id", payment.ID,
		"order_id", payment.OrderID,
		"item_id", payment.ItemID,
		"transaction_id", payment.TransactionID,
	)

	return payment, nil
}

// CreateIntent obtains a charge secret from the payment processor.
// The processor counts in minor units; the conversion from the decimal
// price happens here and nowhere else.
func (s *paymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}

	secret, err := s.intents.CreateIntent(ctx, MinorUnits(price))
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	return secret, nil
}

// MinorUnits converts a decimal currency amount to the processor's
// integer minor-unit representation. Rounding guards against float
// artifacts like 19.99*100 = 1998.9999999999998.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// validateRecordRequest validates a record payment request
func (s *paymentService) validateRecordRequest(req *services.RecordPaymentRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.ItemID, validation.Required),
		validation.Field(&req.TransactionID, validation.Required),
	)
}
