package store

import (
	"context"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// UserStore defines the interface for user (credential) persistence.
// Username is the key. Every mutating method is a single statement against
// one row, so no caller can observe a half-applied update.
type UserStore interface {
	// Create saves a new user.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// Exists reports whether a user with the given username is stored.
	Exists(ctx context.Context, username string) (bool, error)

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByToken retrieves the user currently holding the given session token.
	// Returns ErrUserNotFound if no user holds it.
	GetByToken(ctx context.Context, token string) (*domain.User, error)

	// UpdateProfile writes the user's name and password hash.
	// Session fields are left untouched.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, user *domain.User) error

	// UpdateSession replaces the user's token and expiry together.
	// A nil session clears both.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateSession(ctx context.Context, username string, session *domain.Session) error

	// DeleteAll removes every user. Contacts must be deleted first.
	DeleteAll(ctx context.Context) error
}
