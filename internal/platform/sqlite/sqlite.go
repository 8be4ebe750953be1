package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/phrazzld/contacts-api/internal/platform/sqlstore"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Dialect is the SQLite flavour of the SQL stores.
var Dialect = sqlstore.Dialect{
	Name:     "sqlite",
	Goose:    goose.DialectSQLite3,
	MapError: MapError,

	CreateUser: `INSERT INTO users (username, password_hash, name) VALUES (?1, ?2, ?3)`,
	UserExists: `SELECT EXISTS (SELECT 1 FROM users WHERE username = ?1)`,
	GetUserByUsername: `SELECT username, password_hash, name, token, token_expired_at
		FROM users WHERE username = ?1`,
	GetUserByToken: `SELECT username, password_hash, name, token, token_expired_at
		FROM users WHERE token = ?1`,
	UpdateUserProfile: `UPDATE users SET name = ?2, password_hash = ?3 WHERE username = ?1`,
	UpdateUserSession: `UPDATE users SET token = ?2, token_expired_at = ?3 WHERE username = ?1`,
	DeleteAllUsers:    `DELETE FROM users`,

	CreateContact: `INSERT INTO contacts (id, username, first_name, last_name, email, phone)
		VALUES (?1, ?2, ?3, ?4, ?5, ?6)`,
	GetContactByOwner: `SELECT id, username, first_name, last_name, email, phone
		FROM contacts WHERE id = ?1 AND username = ?2`,
	UpdateContact: `UPDATE contacts SET first_name = ?3, last_name = ?4, email = ?5, phone = ?6
		WHERE id = ?1 AND username = ?2`,
	DeleteContactByOwner: `DELETE FROM contacts WHERE id = ?1 AND username = ?2`,
	DeleteAllContacts:    `DELETE FROM contacts`,
}

// Open opens the SQLite database at path with foreign keys enforced.
// An in-memory database is bound to a single connection, since every new
// connection to ":memory:" would see an empty database.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == MemoryDSN {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	return sqlstore.Migrate(ctx, db, Dialect, fsys)
}

// NewUserStore creates a SQLite-backed store.UserStore.
func NewUserStore(db *sql.DB, logger *slog.Logger) *sqlstore.UserStore {
	return sqlstore.NewUserStore(db, Dialect, logger)
}

// NewContactStore creates a SQLite-backed store.ContactStore.
func NewContactStore(db *sql.DB, logger *slog.Logger) *sqlstore.ContactStore {
	return sqlstore.NewContactStore(db, Dialect, logger)
}
