package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service/auth"
)

// DefaultTokenHeader carries the session token when none is configured.
const DefaultTokenHeader = "X-API-Token"

// TokenResolver resolves a session token to its user.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// AuthMiddleware resolves the session token on every request and places the
// resulting principal in the request context.
type AuthMiddleware struct {
	resolver TokenResolver
	header   string
}

// NewAuthMiddleware creates a new AuthMiddleware reading the token from
// header. An empty header selects DefaultTokenHeader.
func NewAuthMiddleware(resolver TokenResolver, header string) *AuthMiddleware {
	if header == "" {
		header = DefaultTokenHeader
	}
	return &AuthMiddleware{resolver: resolver, header: header}
}

// Authenticate rejects requests without a valid, unexpired token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.resolver.Resolve(r.Context(), r.Header.Get(m.header))
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrTokenExpired):
				shared.RespondWithError(w, r, http.StatusUnauthorized, auth.ErrTokenExpired.Error())
			case errors.Is(err, auth.ErrUnauthenticated):
				shared.RespondWithError(w, r, http.StatusUnauthorized, auth.ErrUnauthenticated.Error())
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					shared.InternalErrorMessage, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithPrincipal(r.Context(), user)))
	})
}
