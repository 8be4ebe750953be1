package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/contacts-api/internal/platform/postgres"
	"github.com/phrazzld/contacts-api/internal/platform/sqlite"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 10 * time.Second

// GetTestDatabaseURL returns the PostgreSQL URL for tests.
// It checks DATABASE_URL and CONTACTS_TEST_DB_URL in that order.
func GetTestDatabaseURL() string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return os.Getenv("CONTACTS_TEST_DB_URL")
}

// IsIntegrationTestEnvironment reports whether a PostgreSQL database is available.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// NewSQLite returns a migrated, private in-memory SQLite database.
func NewSQLite(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := sqlite.Open(ctx, sqlite.MemoryDSN)
	require.NoError(t, err, "Failed to open sqlite database")
	t.Cleanup(func() { CleanupDB(t, db) })

	require.NoError(t, sqlite.Migrate(ctx, db), "Failed to run sqlite migrations")
	return db
}

// NewPostgres returns a migrated PostgreSQL database with empty tables.
// The test is skipped when no database URL is configured.
func NewPostgres(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("DATABASE_URL or CONTACTS_TEST_DB_URL not set - skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, dbURL, 5)
	require.NoError(t, err, "Failed to open postgres database")
	t.Cleanup(func() { CleanupDB(t, db) })

	require.NoError(t, postgres.Migrate(ctx, db), "Failed to run postgres migrations")
	Truncate(t, db)
	return db
}

// Truncate removes every row from the application tables.
func Truncate(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	for _, table := range []string{"contacts", "users"} {
		_, err := db.ExecContext(ctx, "DELETE FROM "+table)
		require.NoError(t, err, "Failed to empty table %s", table)
	}
}

// CleanupDB closes a database connection, logging any errors.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}

	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close database connection: %v", err)
	}
}
