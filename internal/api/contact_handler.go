package api

import (
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/service"
)

// ContactHandler handles contact CRUD requests. Every route requires a principal.
type ContactHandler struct {
	contacts ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contacts ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Create handles POST /contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req service.CreateContactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.contacts.Create(r.Context(), principal, req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, resp)
}

// Get handles GET /contacts/{contactID}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	resp, err := h.contacts.Get(r.Context(), principal, contactID(r))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, resp)
}

// Update handles PUT /contacts/{contactID}. The id in the path wins over any
// id in the body.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req service.UpdateContactRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = contactID(r)

	resp, err := h.contacts.Update(r.Context(), principal, req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, resp)
}

// Delete handles DELETE /contacts/{contactID}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := h.contacts.Delete(r.Context(), principal, contactID(r)); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, OK)
}
