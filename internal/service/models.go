package service

import "github.com/phrazzld/contacts-api/internal/domain"

// Validator checks request structs against their `validate` tags.
type Validator interface {
	Validate(v any) error
}

// RegisterUserRequest is the payload of POST /users.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"notblank,max=100"`
	Password string `json:"password" validate:"notblank,max=100"`
	Name     string `json:"name"     validate:"notblank,max=100"`
}

// UpdateUserRequest is the payload of PATCH /users/current. Nil or blank
// fields leave the stored value unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,max=100"`
	Password *string `json:"password" validate:"omitempty,max=100"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// CreateContactRequest is the payload of POST /contacts.
type CreateContactRequest struct {
	FirstName string `json:"firstName" validate:"notblank,max=100"`
	LastName  string `json:"lastName"  validate:"max=100"`
	Email     string `json:"email"     validate:"omitempty,max=100,email"`
	Phone     string `json:"phone"     validate:"max=100"`
}

// UpdateContactRequest is the payload of PUT /contacts/{id}. ID comes from
// the path. Every field replaces the stored one, so omitted fields are cleared.
type UpdateContactRequest struct {
	ID        string `json:"id"        validate:"-"`
	FirstName string `json:"firstName" validate:"notblank,max=100"`
	LastName  string `json:"lastName"  validate:"max=100"`
	Email     string `json:"email"     validate:"omitempty,max=100,email"`
	Phone     string `json:"phone"     validate:"max=100"`
}

// ContactResponse is the public view of a contact. The owner is implied by
// the caller and never echoed back.
type ContactResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{Username: u.Username, Name: u.Name}
}

func toContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}
