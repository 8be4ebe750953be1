package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// UserStore implements store.UserStore over a SQL database.
type UserStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewUserStore creates a UserStore that runs the dialect's statements on db.
// If logger is nil, a default logger will be used.
func NewUserStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "user_store"), slog.String("dialect", dialect.Name)),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return store.NewStoreError("user", "create", "invalid user", errors.Join(store.ErrInvalidEntity, err))
	}

	_, err := s.db.ExecContext(ctx, s.dialect.CreateUser, user.Username, user.PasswordHash, user.Name)
	if err != nil {
		err = s.dialect.MapError(err)
		if errors.Is(err, store.ErrDuplicate) {
			s.logger.DebugContext(ctx, "username already exists", slog.String("username", user.Username))
			return store.ErrUsernameExists
		}
		s.logger.ErrorContext(ctx, "failed to insert user", slog.String("error", err.Error()))
		return store.NewStoreError("user", "create", "insert failed", err)
	}

	s.logger.DebugContext(ctx, "user created", slog.String("username", user.Username))
	return nil
}

// Exists implements store.UserStore.Exists
func (s *UserStore) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, s.dialect.UserExists, username).Scan(&exists); err != nil {
		return false, store.NewStoreError("user", "exists", "query failed", s.dialect.MapError(err))
	}
	return exists, nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx, s.dialect.GetUserByUsername, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", "query failed", s.dialect.MapError(err))
	}
	return user, nil
}

// GetByToken implements store.UserStore.GetByToken
func (s *UserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx, s.dialect.GetUserByToken, token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get_by_token", "query failed", s.dialect.MapError(err))
	}
	return user, nil
}

// UpdateProfile implements store.UserStore.UpdateProfile
func (s *UserStore) UpdateProfile(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return store.NewStoreError("user", "update", "invalid user", errors.Join(store.ErrInvalidEntity, err))
	}

	result, err := s.db.ExecContext(ctx, s.dialect.UpdateUserProfile, user.Username, user.Name, user.PasswordHash)
	if err != nil {
		return store.NewStoreError("user", "update", "update failed", s.dialect.MapError(err))
	}
	return checkRowsAffected(result, store.ErrUserNotFound)
}

// UpdateSession implements store.UserStore.UpdateSession
func (s *UserStore) UpdateSession(ctx context.Context, username string, session *domain.Session) error {
	token, expiredAt := sessionArgs(session)

	result, err := s.db.ExecContext(ctx, s.dialect.UpdateUserSession, username, token, expiredAt)
	if err != nil {
		return store.NewStoreError("user", "update_session", "update failed", s.dialect.MapError(err))
	}
	return checkRowsAffected(result, store.ErrUserNotFound)
}

// DeleteAll implements store.UserStore.DeleteAll
func (s *UserStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.DeleteAllUsers); err != nil {
		return store.NewStoreError("user", "delete_all", "delete failed", s.dialect.MapError(err))
	}
	return nil
}
