package handler

import (
	"log/slog"
	"net/http"

	"secondlook/internal/domain/services"
	"secondlook/internal/httputil"
)

// PaymentHandler handles charge HTTP requests
type PaymentHandler struct {
	service services.PaymentService
	logger  *slog.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(service services.PaymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger,
	}
}

// createIntentRequest is the payload for obtaining a charge secret
type createIntentRequest struct {
	Price float64 `json:"price"`
}

// CreateIntent obtains a client-usable charge secret from the processor
// POST /create-payment-intent
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	secret, err := h.service.CreateIntent(r.Context(), req.Price)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"clientSecret": secret})
}

// Record persists a confirmed charge and cascades order/product updates
// POST /payments
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req services.RecordPaymentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.service.Record(r.Context(), httputil.GetEmail(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, payment)
}
