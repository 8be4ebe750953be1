package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/phrazzld/contacts-api/internal/api"
	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/metrics"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/store"
	"github.com/phrazzld/contacts-api/internal/validation"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	contactStore store.ContactStore

	metrics        *metrics.Metrics
	authService    *auth.Service
	tokenResolver  *auth.TokenResolver
	userService    *service.UserService
	contactService *service.ContactService
}

// newApplication wires stores, services and metrics on top of an open,
// migrated database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.userStore, app.contactStore, err = newStores(cfg.Database.Driver, db, logger)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.Database.Driver),
	)
	app.metrics = metrics.New(registry)

	validator := validation.New()
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.authService, err = auth.NewService(app.userStore, hasher, validator, cfg.Auth.TokenTTL, logger,
		auth.WithLoginRecorder(app.metrics))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	logger.Info("authentication service initialized", "token_ttl", app.authService.TTL().String())

	app.tokenResolver = auth.NewTokenResolver(app.userStore, nil)
	app.userService = service.NewUserService(app.userStore, hasher, validator, logger)
	app.contactService = service.NewContactService(app.contactStore, validator, logger)

	return app, nil
}

// handler returns the instrumented root handler.
func (app *application) handler() http.Handler {
	router := api.NewRouter(api.RouterDeps{
		Logger:      app.logger,
		Metrics:     app.metrics,
		Resolver:    app.tokenResolver,
		Auth:        app.authService,
		Users:       app.userService,
		Contacts:    app.contactService,
		BasePath:    app.config.Server.BasePath,
		TokenHeader: app.config.Auth.TokenHeader,
	})
	return otelhttp.NewHandler(router, app.config.Telemetry.ServiceName)
}
