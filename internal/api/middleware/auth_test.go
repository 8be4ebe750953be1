package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service/auth"
)

type resolverFunc func(ctx context.Context, token string) (*domain.User, error)

func (f resolverFunc) Resolve(ctx context.Context, token string) (*domain.User, error) {
	return f(ctx, token)
}

func TestAuthenticate(t *testing.T) {
	eko := &domain.User{Username: "eko"}

	resolver := resolverFunc(func(_ context.Context, token string) (*domain.User, error) {
		switch token {
		case "good":
			return eko, nil
		case "old":
			return nil, auth.ErrTokenExpired
		case "broken":
			return nil, fmt.Errorf("failed to look up token: %w", errors.New("database is locked"))
		default:
			return nil, auth.ErrUnauthenticated
		}
	})

	tests := []struct {
		name       string
		header     string
		token      string
		wantStatus int
		wantError  string
	}{
		{"valid token", DefaultTokenHeader, "good", http.StatusOK, ""},
		{"missing token", "", "", http.StatusUnauthorized, "please login first"},
		{"unknown token", DefaultTokenHeader, "nope", http.StatusUnauthorized, "please login first"},
		{"expired token", DefaultTokenHeader, "old", http.StatusUnauthorized, "token expired"},
		{"token in another header", "Authorization", "good", http.StatusUnauthorized, "please login first"},
		{"store failure", DefaultTokenHeader, "broken", http.StatusInternalServerError, shared.InternalErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *domain.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = shared.Principal(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users/current", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.token)
			}
			rec := httptest.NewRecorder()

			NewAuthMiddleware(resolver, "").Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError == "" {
				assert.Same(t, eko, seen)
				return
			}

			assert.Nil(t, seen)
			var resp shared.WebResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotNil(t, resp.Errors)
			assert.Equal(t, tt.wantError, *resp.Errors)
			assert.NotContains(t, rec.Body.String(), "database is locked")
		})
	}
}

func TestAuthenticate_CustomHeader(t *testing.T) {
	var got string
	resolver := resolverFunc(func(_ context.Context, token string) (*domain.User, error) {
		got = token
		return &domain.User{Username: "eko"}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Session", "abc")
	rec := httptest.NewRecorder()

	NewAuthMiddleware(resolver, "X-Session").
		Authenticate(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})).
		ServeHTTP(rec, req)

	assert.Equal(t, "abc", got)
	assert.Equal(t, http.StatusOK, rec.Code)
}
