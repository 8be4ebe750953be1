package store

import (
	"context"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// ContactStore defines the interface for contact persistence.
// Reads and writes are scoped by owner: a contact owned by someone else is
// reported exactly like a contact that does not exist.
type ContactStore interface {
	// Create saves a new contact.
	Create(ctx context.Context, contact *domain.Contact) error

	// GetByOwner retrieves the contact with the given ID if owner owns it.
	// Returns ErrContactNotFound if it is absent or owned by another user.
	GetByOwner(ctx context.Context, owner, id string) (*domain.Contact, error)

	// Update overwrites the mutable fields of a contact owned by contact.Owner.
	// Returns ErrContactNotFound if no such owned contact exists.
	Update(ctx context.Context, contact *domain.Contact) error

	// DeleteByOwner permanently removes the contact if owner owns it.
	// Returns ErrContactNotFound if it is absent or owned by another user.
	DeleteByOwner(ctx context.Context, owner, id string) error

	// DeleteAll removes every contact.
	DeleteAll(ctx context.Context) error
}
