package handler

import (
	"log/slog"
	"net/http"

	"secondlook/internal/domain/models"
	"secondlook/internal/domain/services"
	"secondlook/internal/httputil"
)

// UserHandler handles account HTTP requests
type UserHandler struct {
	service services.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// Register creates an account (self-registration, unauthenticated)
// POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterUserRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, user)
}

// GetByEmail fetches an account by email
// GET /users/{email}
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, user)
}

// IsAdmin answers whether the email currently holds the admin role
// GET /users/admin/{email}
func (h *UserHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	h.respondHasRole(w, r, models.RoleAdmin, "isAdmin")
}

// IsSeller answers whether the email currently holds the seller role
// GET /users/sellers/{email}
func (h *UserHandler) IsSeller(w http.ResponseWriter, r *http.Request) {
	h.respondHasRole(w, r, models.RoleSeller, "isSeller")
}

// IsBuyer answers whether the email currently holds the buyer role
// GET /users/buyers/{email}
func (h *UserHandler) IsBuyer(w http.ResponseWriter, r *http.Request) {
	h.respondHasRole(w, r, models.RoleBuyer, "isBuyer")
}

func (h *UserHandler) respondHasRole(w http.ResponseWriter, r *http.Request, role models.Role, field string) {
	has, err := h.service.HasRole(r.Context(), r.PathValue("email"), role)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{field: has})
}

// ListBuyers lists all buyer accounts
// GET /buyers
func (h *UserHandler) ListBuyers(w http.ResponseWriter, r *http.Request) {
	h.respondListByRole(w, r, models.RoleBuyer)
}

// ListSellers lists all seller accounts
// GET /sellers
func (h *UserHandler) ListSellers(w http.ResponseWriter, r *http.Request) {
	h.respondListByRole(w, r, models.RoleSeller)
}

func (h *UserHandler) respondListByRole(w http.ResponseWriter, r *http.Request, role models.Role) {
	users, err := h.service.ListByRole(r.Context(), role)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, users)
}

// Verify marks the target account verified. Admin only.
// PUT /users/admin/{id}
func (h *UserHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	if err := h.service.Verify(r.Context(), httputil.GetEmail(r), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"verified": true})
}

// Delete removes the target account. Admin only.
// DELETE /buyers/{id}, DELETE /sellers/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	if err := h.service.Delete(r.Context(), httputil.GetEmail(r), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
