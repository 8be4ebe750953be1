package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

// ContactService manages the contacts of the calling user.
type ContactService struct {
	contacts  store.ContactStore
	validator Validator
	logger    *slog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(contacts store.ContactStore, validator Validator, logger *slog.Logger) *ContactService {
	return &ContactService{
		contacts:  contacts,
		validator: validator,
		logger:    logger.With("component", "contact_service"),
	}
}

// Create stores a new contact owned by principal.
func (s *ContactService) Create(
	ctx context.Context,
	principal *domain.User,
	req CreateContactRequest,
) (ContactResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return ContactResponse{}, err
	}

	contact, err := domain.NewContact(principal.Username, req.FirstName, req.LastName, req.Email, req.Phone)
	if err != nil {
		return ContactResponse{}, err
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		s.log(ctx).Error("failed to create contact", "error", err, "username", principal.Username)
		return ContactResponse{}, NewServiceError("contact", "create", err)
	}

	s.log(ctx).Debug("contact created", "contact_id", contact.ID, "username", principal.Username)
	return toContactResponse(contact), nil
}

// Get returns one of principal's contacts.
func (s *ContactService) Get(ctx context.Context, principal *domain.User, id string) (ContactResponse, error) {
	contact, err := s.findOwned(ctx, principal, id)
	if err != nil {
		return ContactResponse{}, err
	}
	return toContactResponse(contact), nil
}

// Update replaces every editable field of one of principal's contacts.
func (s *ContactService) Update(
	ctx context.Context,
	principal *domain.User,
	req UpdateContactRequest,
) (ContactResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return ContactResponse{}, err
	}

	contact, err := s.findOwned(ctx, principal, req.ID)
	if err != nil {
		return ContactResponse{}, err
	}

	contact.Replace(req.FirstName, req.LastName, req.Email, req.Phone)
	if err := s.contacts.Update(ctx, contact); err != nil {
		if store.IsNotFoundError(err) {
			return ContactResponse{}, ErrContactNotFound
		}
		s.log(ctx).Error("failed to update contact", "error", err, "contact_id", contact.ID)
		return ContactResponse{}, NewServiceError("contact", "update", err)
	}

	return toContactResponse(contact), nil
}

// Delete removes one of principal's contacts.
func (s *ContactService) Delete(ctx context.Context, principal *domain.User, id string) error {
	if err := s.contacts.DeleteByOwner(ctx, principal.Username, id); err != nil {
		if store.IsNotFoundError(err) {
			return ErrContactNotFound
		}
		s.log(ctx).Error("failed to delete contact", "error", err, "contact_id", id)
		return NewServiceError("contact", "delete", err)
	}

	s.log(ctx).Debug("contact deleted", "contact_id", id, "username", principal.Username)
	return nil
}

// findOwned performs the single owner-scoped lookup used by every
// read-or-modify path. A contact owned by someone else and a missing contact
// both yield ErrContactNotFound.
func (s *ContactService) findOwned(ctx context.Context, principal *domain.User, id string) (*domain.Contact, error) {
	contact, err := s.contacts.GetByOwner(ctx, principal.Username, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrContactNotFound
		}
		s.log(ctx).Error("failed to load contact", "error", err, "contact_id", id)
		return nil, NewServiceError("contact", "get", err)
	}
	return contact, nil
}

func (s *ContactService) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}
