package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/service/auth"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, shared.ErrMalformedBody):
		return http.StatusBadRequest

	case errors.Is(err, auth.ErrUnauthenticated),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrBadCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrContactNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message shown to the client for err.
// Classified errors carry client-facing text already; everything else is
// reduced to a generic message.
func GetSafeErrorMessage(err error) string {
	var validationErr *domain.ValidationError

	switch {
	case err == nil:
		return shared.InternalErrorMessage
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.Is(err, domain.ErrValidation):
		return domain.ErrValidation.Error()
	case errors.Is(err, shared.ErrMalformedBody):
		return shared.ErrMalformedBody.Error()
	case errors.Is(err, service.ErrUsernameTaken):
		return service.ErrUsernameTaken.Error()
	case errors.Is(err, auth.ErrTokenExpired):
		return auth.ErrTokenExpired.Error()
	case errors.Is(err, auth.ErrUnauthenticated):
		return auth.ErrUnauthenticated.Error()
	case errors.Is(err, auth.ErrBadCredentials):
		return auth.ErrBadCredentials.Error()
	case errors.Is(err, service.ErrContactNotFound):
		return service.ErrContactNotFound.Error()
	default:
		return shared.InternalErrorMessage
	}
}

// HandleAPIError writes the error envelope for err, logging the redacted
// detail.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
