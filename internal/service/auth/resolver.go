package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// TokenResolver turns a presented token into the user it belongs to.
// It reads the store on every call so a logout or re-login takes effect
// immediately.
type TokenResolver struct {
	users store.UserStore
	now   func() time.Time
}

// NewTokenResolver creates a TokenResolver. A nil now uses time.Now.
func NewTokenResolver(users store.UserStore, now func() time.Time) *TokenResolver {
	if now == nil {
		now = time.Now
	}
	return &TokenResolver{users: users, now: now}
}

// Resolve returns the user owning token. It fails with ErrUnauthenticated
// for an empty or unknown token and with ErrTokenExpired once the session
// expiry lies in the past.
func (r *TokenResolver) Resolve(ctx context.Context, token string) (*domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrUnauthenticated
	}

	user, err := r.users.GetByToken(ctx, token)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	if !user.LoggedIn() {
		return nil, ErrUnauthenticated
	}
	if user.Session.Expired(r.now()) {
		return nil, ErrTokenExpired
	}
	return user, nil
}
