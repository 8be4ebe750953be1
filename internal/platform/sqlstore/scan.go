package sqlstore

import (
	"database/sql"
	"fmt"

	"github.com/phrazzld/contacts-api/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user      domain.User
		token     sql.NullString
		expiredAt sql.NullInt64
	)
	if err := row.Scan(&user.Username, &user.PasswordHash, &user.Name, &token, &expiredAt); err != nil {
		return nil, err
	}

	// Both columns are constrained to be null together.
	if token.Valid && expiredAt.Valid {
		user.Session = &domain.Session{Token: token.String, ExpiredAt: expiredAt.Int64}
	}
	return &user, nil
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var (
		contact                domain.Contact
		lastName, email, phone sql.NullString
	)
	if err := row.Scan(
		&contact.ID,
		&contact.Owner,
		&contact.FirstName,
		&lastName,
		&email,
		&phone,
	); err != nil {
		return nil, err
	}

	contact.LastName = lastName.String
	contact.Email = email.String
	contact.Phone = phone.String
	return &contact, nil
}

// nullString stores empty optional fields as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func sessionArgs(session *domain.Session) (sql.NullString, sql.NullInt64) {
	if session == nil {
		return sql.NullString{}, sql.NullInt64{}
	}
	return sql.NullString{String: session.Token, Valid: true},
		sql.NullInt64{Int64: session.ExpiredAt, Valid: true}
}

// checkRowsAffected returns notFound when a mutation touched no row.
func checkRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to checkRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}

