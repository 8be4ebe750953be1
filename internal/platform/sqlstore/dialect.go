package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Dialect carries the engine-specific parts of the stores: the statements,
// the goose dialect, and the driver error mapping.
//
// Statement parameters are positional and share one ordering across dialects:
//
//	CreateUser:          username, password_hash, name
//	UserExists:          username
//	GetUserByUsername:   username
//	GetUserByToken:      token
//	UpdateUserProfile:   username, name, password_hash
//	UpdateUserSession:   username, token, token_expired_at
//	CreateContact:       id, username, first_name, last_name, email, phone
//	GetContactByOwner:   id, username
//	UpdateContact:       id, username, first_name, last_name, email, phone
//	DeleteContactByOwner: id, username
type Dialect struct {
	Name  string
	Goose goose.Dialect

	// MapError converts driver errors into store sentinel errors.
	MapError func(error) error

	CreateUser        string
	UserExists        string
	GetUserByUsername string
	GetUserByToken    string
	UpdateUserProfile string
	UpdateUserSession string
	DeleteAllUsers    string

	CreateContact        string
	GetContactByOwner    string
	UpdateContact        string
	DeleteContactByOwner string
	DeleteAllContacts    string
}

// Migrate applies every pending migration found at the root of fsys.
func Migrate(ctx context.Context, db *sql.DB, d Dialect, fsys fs.FS) error {
	provider, err := goose.NewProvider(d.Goose, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create %s migration provider: %w", d.Name, err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply %s migrations: %w", d.Name, err)
	}
	return nil
}
