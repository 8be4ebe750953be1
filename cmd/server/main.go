// Package main implements the entry point for the contacts API server,
// which stores per-user address books behind opaque session tokens.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/platform/tracing"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "apply database migrations and exit")
	configFile := flag.String("config", "", "path to a config file (defaults to ./config.yaml when present)")
	flag.Parse()

	if err := run(*configFile, *migrateOnly); err != nil {
		slog.Error("contacts-api exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, wires the application, and serves until SIGINT or
// SIGTERM arrives.
func run(configFile string, migrateOnly bool) error {
	cfg, err := loadAppConfig(configFile)
	if err != nil {
		return err
	}

	log := logger.Setup(cfg.Server, cfg.Telemetry)
	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Error("failed to close database", "error", cerr)
		}
	}()

	if err := migrateDatabase(ctx, cfg.Database.Driver, db); err != nil {
		return err
	}
	log.Info("database migrations applied")
	if migrateOnly {
		return nil
	}

	shutdownTracing, err := tracing.Init(ctx, log, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if terr := shutdownTracing(sctx); terr != nil {
			log.Error("failed to shut down tracing", "error", terr)
		}
	}()

	app, err := newApplication(cfg, log, db)
	if err != nil {
		return err
	}

	return app.startHTTPServer(ctx)
}

func loadAppConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
