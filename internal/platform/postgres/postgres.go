package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"

	"github.com/phrazzld/contacts-api/internal/platform/sqlstore"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Dialect is the PostgreSQL flavour of the SQL stores.
var Dialect = sqlstore.Dialect{
	Name:     "postgres",
	Goose:    goose.DialectPostgres,
	MapError: MapError,

	CreateUser: `INSERT INTO users (username, password_hash, name) VALUES ($1, $2, $3)`,
	UserExists: `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
	GetUserByUsername: `SELECT username, password_hash, name, token, token_expired_at
		FROM users WHERE username = $1`,
	GetUserByToken: `SELECT username, password_hash, name, token, token_expired_at
		FROM users WHERE token = $1`,
	UpdateUserProfile: `UPDATE users SET name = $2, password_hash = $3 WHERE username = $1`,
	UpdateUserSession: `UPDATE users SET token = $2, token_expired_at = $3 WHERE username = $1`,
	DeleteAllUsers:    `DELETE FROM users`,

	CreateContact: `INSERT INTO contacts (id, username, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6)`,
	GetContactByOwner: `SELECT id, username, first_name, last_name, email, phone
		FROM contacts WHERE id = $1 AND username = $2`,
	UpdateContact: `UPDATE contacts SET first_name = $3, last_name = $4, email = $5, phone = $6
		WHERE id = $1 AND username = $2`,
	DeleteContactByOwner: `DELETE FROM contacts WHERE id = $1 AND username = $2`,
	DeleteAllContacts:    `DELETE FROM contacts`,
}

// Open establishes a connection pool to PostgreSQL and verifies it with a ping.
func Open(ctx context.Context, url string, maxOpenConns int) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns / 2)
	}
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	return sqlstore.Migrate(ctx, db, Dialect, fsys)
}

// NewUserStore creates a PostgreSQL-backed store.UserStore.
func NewUserStore(db *sql.DB, logger *slog.Logger) *sqlstore.UserStore {
	return sqlstore.NewUserStore(db, Dialect, logger)
}

// NewContactStore creates a PostgreSQL-backed store.ContactStore.
func NewContactStore(db *sql.DB, logger *slog.Logger) *sqlstore.ContactStore {
	return sqlstore.NewContactStore(db, Dialect, logger)
}
