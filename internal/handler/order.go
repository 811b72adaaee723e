package handler

import (
	"log/slog"
	"net/http"

	"secondlook/internal/domain/services"
	"secondlook/internal/httputil"
)

// OrderHandler handles checkout HTTP requests
type OrderHandler struct {
	service services.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service services.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

// Create records a checkout. Unauthenticated (guest checkout).
// POST /orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateOrderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, order)
}

// Get fetches one order
// GET /orders/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	order, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, order)
}

// ListOwn returns the authenticated buyer's own orders
// GET /orders?email=
func (h *OrderHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	orders, err := h.service.ListOwn(r.Context(), httputil.GetEmail(r), email)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, orders)
}
