package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service/auth"
)

// requirePrincipal returns the authenticated user, writing a 401 when the
// route was reached without the authentication middleware.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := shared.Principal(r.Context())
	if !ok {
		HandleAPIError(w, r, auth.ErrUnauthenticated)
		return nil, false
	}
	return user, true
}

// decodeBody parses the JSON body into v, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		HandleAPIError(w, r, err)
		return false
	}
	return true
}

func contactID(r *http.Request) string {
	return chi.URLParam(r, "contactID")
}
