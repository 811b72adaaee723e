package handler

import (
	"log/slog"
	"net/http"

	"secondlook/internal/domain/services"
	"secondlook/internal/httputil"
	"secondlook/internal/service"
)

// ProductHandler handles listing HTTP requests
type ProductHandler struct {
	service services.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service services.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// Create lists a product for the authenticated seller
// POST /product
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateProductRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.service.Create(r.Context(), httputil.GetEmail(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, product)
}

// Get fetches one product
// GET /product/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, product)
}

// ListByCategory returns the available products in a category
// GET /category/{id}
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	products, err := h.service.ListByCategory(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, products)
}

// ListOwn returns the authenticated seller's listings
// GET /sellers/products?email=
func (h *ProductHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	products, err := h.service.ListOwn(r.Context(), httputil.GetEmail(r), email)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, products)
}

// ListAdvertised returns available advertised products
// GET /advertisedProducts
func (h *ProductHandler) ListAdvertised(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListAdvertised(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, products)
}

// ListReported returns reported products awaiting moderation
// GET /reportedProducts
func (h *ProductHandler) ListReported(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListReported(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, products)
}

// ListRecent returns the newest available products
// GET /products/recent
func (h *ProductHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListRecent(r.Context(), service.RecentProductLimit)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, products)
}

// Advertise flags the authenticated seller's own listing
// PUT /seller/products/{id}
func (h *ProductHandler) Advertise(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := h.service.Advertise(r.Context(), httputil.GetEmail(r), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"advertise": true})
}

// Report flags a listing for moderation. Unauthenticated: any caller may flag.
// PUT /product/{id}
func (h *ProductHandler) Report(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := h.service.Report(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"reported": true})
}

// ClearReport removes the reported flag. Admin only.
// PUT /admin/product/{id}
func (h *ProductHandler) ClearReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := h.service.ClearReport(r.Context(), httputil.GetEmail(r), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"reported": false})
}

// DeleteOwn removes the authenticated seller's own listing
// DELETE /seller/products/{id}
func (h *ProductHandler) DeleteOwn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := h.service.DeleteOwn(r.Context(), httputil.GetEmail(r), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// DeleteAny removes any listing. Admin only.
// DELETE /admin/products/{id}
func (h *ProductHandler) DeleteAny(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := h.service.DeleteAny(r.Context(), httputil.GetEmail(r), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
