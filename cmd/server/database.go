package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/postgres"
	"github.com/phrazzld/contacts-api/internal/platform/sqlite"
	"github.com/phrazzld/contacts-api/internal/store"
)

const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
)

// setupAppDatabase opens the configured database and verifies the connection.
func setupAppDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	switch cfg.Driver {
	case driverPostgres:
		db, err = postgres.Open(ctx, cfg.URL, cfg.MaxOpenConns)
	case driverSQLite:
		db, err = sqlite.Open(ctx, cfg.URL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	logger.Info("database connection established", "driver", cfg.Driver)
	return db, nil
}

func migrateDatabase(ctx context.Context, driver string, db *sql.DB) error {
	var err error
	switch driver {
	case driverPostgres:
		err = postgres.Migrate(ctx, db)
	case driverSQLite:
		err = sqlite.Migrate(ctx, db)
	default:
		err = fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// newStores builds the user and contact stores for driver.
func newStores(driver string, db *sql.DB, logger *slog.Logger) (store.UserStore, store.ContactStore, error) {
	switch driver {
	case driverPostgres:
		return postgres.NewUserStore(db, logger), postgres.NewContactStore(db, logger), nil
	case driverSQLite:
		return sqlite.NewUserStore(db, logger), sqlite.NewContactStore(db, logger), nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
