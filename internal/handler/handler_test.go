package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"secondlook/internal/domain"
	"secondlook/internal/domain/models"
	"secondlook/internal/domain/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserService answers role checks from a fixed map.
type fakeUserService struct {
	roles      map[string]models.Role
	registered *models.User
}

func (f *fakeUserService) Register(ctx context.Context, req *services.RegisterUserRequest) (*models.User, error) {
	if f.registered != nil {
		return nil, &domain.ConflictError{
			Message:      fmt.Sprintf("account with email %s already exists", req.Email),
			ResourceType: "user",
			ResourceID:   req.Email,
		}
	}
	f.registered = &models.User{ID: uuid.New(), Name: req.Name, Email: req.Email, Role: req.Role}
	return f.registered, nil
}

func (f *fakeUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if role, ok := f.roles[email]; ok {
		return &models.User{Email: email, Role: role}, nil
	}
	return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
}

func (f *fakeUserService) HasRole(ctx context.Context, email string, role models.Role) (bool, error) {
	return f.roles[email] == role, nil
}

func (f *fakeUserService) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return nil, nil
}

func (f *fakeUserService) Verify(ctx context.Context, adminEmail string, id uuid.UUID) error {
	return nil
}

func (f *fakeUserService) Delete(ctx context.Context, adminEmail string, id uuid.UUID) error {
	return nil
}

func TestIsAdminUnknownEmail(t *testing.T) {
	h := NewUserHandler(&fakeUserService{roles: map[string]models.Role{}}, testLogger())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/admin/{email}", h.IsAdmin)

	r := httptest.NewRequest(http.MethodGet, "/users/admin/nonexistent@x.com", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got, ok := body["isAdmin"]; !ok || got {
		t.Errorf("body = %v, want {isAdmin: false}", body)
	}
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	svc := &fakeUserService{roles: map[string]models.Role{}}
	h := NewUserHandler(svc, testLogger())

	payload := `{"name":"A","email":"a@x.com","role":"buyer"}`

	first := httptest.NewRecorder()
	h.Register(first, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(payload)))
	if first.Code != http.StatusCreated {
		t.Fatalf("first register status = %d, want 201", first.Code)
	}

	second := httptest.NewRecorder()
	h.Register(second, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(payload)))
	if second.Code != http.StatusConflict {
		t.Errorf("second register status = %d, want 409", second.Code)
	}
	if ct := second.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

func TestGetUserNotFound(t *testing.T) {
	h := NewUserHandler(&fakeUserService{roles: map[string]models.Role{}}, testLogger())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/{email}", h.GetByEmail)

	r := httptest.NewRequest(http.MethodGet, "/users/ghost@x.com", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

// fakeProductService only implements what the tested routes touch.
type fakeProductService struct {
	services.ProductService
	product *models.Product
}

func (f *fakeProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if f.product != nil && f.product.ID == id {
		return f.product, nil
	}
	return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
}

func TestGetProduct(t *testing.T) {
	product := &models.Product{ID: uuid.New(), Name: "Lens", Status: models.ProductAvailable}
	h := NewProductHandler(&fakeProductService{product: product}, testLogger())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /product/{id}", h.Get)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "stored product", path: "/product/" + product.ID.String(), wantStatus: http.StatusOK},
		{name: "absent product", path: "/product/" + uuid.NewString(), wantStatus: http.StatusNotFound},
		{name: "malformed id", path: "/product/not-a-uuid", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
