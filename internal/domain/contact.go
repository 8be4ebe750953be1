package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Contact is an address-book entry owned by exactly one user.
// ID and Owner are fixed at creation and never reassigned.
type Contact struct {
	ID        string `json:"id"`
	Owner     string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// NewContact creates a contact owned by owner with a freshly generated ID.
func NewContact(owner, firstName, lastName, email, phone string) (*Contact, error) {
	contact := &Contact{
		ID:        uuid.NewString(),
		Owner:     owner,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
	}
	if err := contact.Validate(); err != nil {
		return nil, err
	}
	return contact, nil
}

// Validate checks the invariants a stored contact must satisfy.
func (c *Contact) Validate() error {
	if c.ID == "" {
		return ErrInvalidID
	}
	if c.Owner == "" {
		return ErrEmptyOwner
	}
	if strings.TrimSpace(c.FirstName) == "" {
		return ErrEmptyFirstName
	}
	return nil
}

// Replace overwrites every mutable field. Empty arguments clear the field.
func (c *Contact) Replace(firstName, lastName, email, phone string) {
	c.FirstName = firstName
	c.LastName = lastName
	c.Email = email
	c.Phone = phone
}
