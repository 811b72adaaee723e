package handler

import (
	"log/slog"
	"net/http"

	"secondlook/internal/domain/repositories"
	"secondlook/internal/httputil"
)

// CategoryHandler serves the read-only category catalog
type CategoryHandler struct {
	categoryRepo repositories.CategoryRepository
	logger       *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo repositories.CategoryRepository, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// List returns all categories
// GET /category
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, categories)
}
