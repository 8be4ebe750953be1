package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// ContactStore implements store.ContactStore over a SQL database.
// Every lookup and mutation filters on both id and owner in one statement.
type ContactStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewContactStore creates a ContactStore that runs the dialect's statements on db.
// If logger is nil, a default logger will be used.
func NewContactStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *ContactStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ContactStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "contact_store"), slog.String("dialect", dialect.Name)),
	}
}

// Ensure ContactStore implements store.ContactStore interface
var _ store.ContactStore = (*ContactStore)(nil)

// Create implements store.ContactStore.Create
func (s *ContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if err := contact.Validate(); err != nil {
		return store.NewStoreError("contact", "create", "invalid contact", errors.Join(store.ErrInvalidEntity, err))
	}

	_, err := s.db.ExecContext(ctx, s.dialect.CreateContact,
		contact.ID,
		contact.Owner,
		contact.FirstName,
		nullString(contact.LastName),
		nullString(contact.Email),
		nullString(contact.Phone),
	)
	if err != nil {
		err = s.dialect.MapError(err)
		s.logger.ErrorContext(ctx, "failed to insert contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID))
		return store.NewStoreError("contact", "create", "insert failed", err)
	}

	s.logger.DebugContext(ctx, "contact created",
		slog.String("contact_id", contact.ID),
		slog.String("owner", contact.Owner))
	return nil
}

// GetByOwner implements store.ContactStore.GetByOwner
func (s *ContactStore) GetByOwner(ctx context.Context, owner, id string) (*domain.Contact, error) {
	contact, err := scanContact(s.db.QueryRowContext(ctx, s.dialect.GetContactByOwner, id, owner))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrContactNotFound
		}
		return nil, store.NewStoreError("contact", "get", "query failed", s.dialect.MapError(err))
	}
	return contact, nil
}

// Update implements store.ContactStore.Update
func (s *ContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	if err := contact.Validate(); err != nil {
		return store.NewStoreError("contact", "update", "invalid contact", errors.Join(store.ErrInvalidEntity, err))
	}

	result, err := s.db.ExecContext(ctx, s.dialect.UpdateContact,
		contact.ID,
		contact.Owner,
		contact.FirstName,
		nullString(contact.LastName),
		nullString(contact.Email),
		nullString(contact.Phone),
	)
	if err != nil {
		return store.NewStoreError("contact", "update", "update failed", s.dialect.MapError(err))
	}
	return checkRowsAffected(result, store.ErrContactNotFound)
}

// DeleteByOwner implements store.ContactStore.DeleteByOwner
func (s *ContactStore) DeleteByOwner(ctx context.Context, owner, id string) error {
	result, err := s.db.ExecContext(ctx, s.dialect.DeleteContactByOwner, id, owner)
	if err != nil {
		return store.NewStoreError("contact", "delete", "delete failed", s.dialect.MapError(err))
	}
	return checkRowsAffected(result, store.ErrContactNotFound)
}

// DeleteAll implements store.ContactStore.DeleteAll
func (s *ContactStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.DeleteAllContacts); err != nil {
		return store.NewStoreError("contact", "delete_all", "delete failed", s.dialect.MapError(err))
	}
	return nil
}
