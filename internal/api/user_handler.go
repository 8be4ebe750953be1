package api

import (
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/service"
)

// UserHandler handles registration and profile requests.
type UserHandler struct {
	users UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.users.Register(r.Context(), req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, OK)
}

// Current handles GET /users/current.
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, h.users.Current(principal))
}

// UpdateCurrent handles PATCH /users/current.
func (h *UserHandler) UpdateCurrent(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.users.UpdateCurrent(r.Context(), principal, req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, resp)
}
