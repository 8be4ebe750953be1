package api

import (
	"context"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/service/auth"
)

// OK is the data payload of operations that have nothing else to return.
const OK = "OK"

// AuthService issues and revokes session tokens.
type AuthService interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
	Logout(ctx context.Context, principal *domain.User) error
}

// UserService manages registration and the caller's profile.
type UserService interface {
	Register(ctx context.Context, req service.RegisterUserRequest) error
	Current(principal *domain.User) service.UserResponse
	UpdateCurrent(ctx context.Context, principal *domain.User, req service.UpdateUserRequest) (service.UserResponse, error)
}

// ContactService manages the caller's contacts.
type ContactService interface {
	Create(ctx context.Context, principal *domain.User, req service.CreateContactRequest) (service.ContactResponse, error)
	Get(ctx context.Context, principal *domain.User, id string) (service.ContactResponse, error)
	Update(ctx context.Context, principal *domain.User, req service.UpdateContactRequest) (service.ContactResponse, error)
	Delete(ctx context.Context, principal *domain.User, id string) error
}

var (
	_ AuthService    = (*auth.Service)(nil)
	_ UserService    = (*service.UserService)(nil)
	_ ContactService = (*service.ContactService)(nil)
)
