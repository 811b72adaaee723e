package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"secondlook/internal/domain"
	"secondlook/internal/domain/models"
	"secondlook/internal/domain/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memUserRepo is an in-memory UserRepository keyed by email.
type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo(users ...*models.User) *memUserRepo {
	m := &memUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
}

func (m *memUserRepo) Create(ctx context.Context, user *models.User) error {
	if _, ok := m.users[user.Email]; ok {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("account with email %s already exists", user.Email),
			ResourceType: "user",
			ResourceID:   user.Email,
		}
	}
	m.users[user.Email] = user
	return nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	return u, nil
}

func (m *memUserRepo) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	var out []models.User
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *memUserRepo) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	for _, u := range m.users {
		if u.ID == id {
			u.Verified = verified
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

func (m *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for email, u := range m.users {
		if u.ID == id {
			delete(m.users, email)
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

// memProductRepo is an in-memory ProductRepository.
type memProductRepo struct {
	products map[uuid.UUID]*models.Product
}

func newMemProductRepo(products ...*models.Product) *memProductRepo {
	m := &memProductRepo{products: make(map[uuid.UUID]*models.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *memProductRepo) Create(ctx context.Context, product *models.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *memProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (m *memProductRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if p.CategoryID == categoryID && p.Status == models.ProductAvailable {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProductRepo) ListBySeller(ctx context.Context, sellerEmail string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if p.SellerEmail == sellerEmail {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProductRepo) ListAdvertised(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if p.Advertise && p.Status == models.ProductAvailable {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProductRepo) ListReported(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if p.Reported {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProductRepo) ListRecent(ctx context.Context, limit int) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if p.Status == models.ProductAvailable {
			out = append(out, *p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memProductRepo) SetAdvertise(ctx context.Context, id uuid.UUID, advertise bool) error {
	p, ok := m.products[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	p.Advertise = advertise
	return nil
}

func (m *memProductRepo) SetReported(ctx context.Context, id uuid.UUID, reported bool) error {
	p, ok := m.products[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	p.Reported = reported
	return nil
}

func (m *memProductRepo) MarkSold(ctx context.Context, id uuid.UUID) error {
	p, ok := m.products[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	if p.Status != models.ProductAvailable {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("product %s is already sold", id),
			ResourceType: "product",
			ResourceID:   id.String(),
		}
	}
	p.Status = models.ProductSold
	p.Advertise = false
	return nil
}

func (m *memProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	delete(m.products, id)
	return nil
}

// memOrderRepo is an in-memory OrderRepository.
type memOrderRepo struct {
	orders map[uuid.UUID]*models.Order
}

func newMemOrderRepo(orders ...*models.Order) *memOrderRepo {
	m := &memOrderRepo{orders: make(map[uuid.UUID]*models.Order)}
	for _, o := range orders {
		m.orders[o.ID] = o
	}
	return m
}

func (m *memOrderRepo) Create(ctx context.Context, order *models.Order) error {
	m.orders[order.ID] = order
	return nil
}

func (m *memOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return o, nil
}

func (m *memOrderRepo) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if o.UserEmail == email {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *memOrderRepo) MarkPaid(ctx context.Context, id uuid.UUID, transactionID string) error {
	o, ok := m.orders[id]
	if !ok {
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	if o.Paid {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("order %s is already paid", id),
			ResourceType: "order",
			ResourceID:   id.String(),
		}
	}
	o.Paid = true
	o.TransactionID = transactionID
	return nil
}

// memPaymentRepo is an in-memory PaymentRepository enforcing one
// payment per order, like the unique index does in Postgres.
type memPaymentRepo struct {
	payments []*models.Payment
	byOrder  map[uuid.UUID]bool
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{byOrder: make(map[uuid.UUID]bool)}
}

func (m *memPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	if m.byOrder[payment.OrderID] {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("payment for order %s already recorded", payment.OrderID),
			ResourceType: "payment",
			ResourceID:   payment.OrderID.String(),
		}
	}
	m.payments = append(m.payments, payment)
	m.byOrder[payment.OrderID] = true
	return nil
}

// passthroughTxManager runs the function without a real transaction.
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	m.calls++
	return fn(ctx)
}

// stubIntentCreator records the requested amount.
type stubIntentCreator struct {
	amount int64
	secret string
	err    error
}

func (s *stubIntentCreator) CreateIntent(ctx context.Context, amountMinorUnits int64) (string, error) {
	s.amount = amountMinorUnits
	return s.secret, s.err
}
