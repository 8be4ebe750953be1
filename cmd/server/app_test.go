package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/sqlite"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            0,
			LogLevel:        "info",
			BasePath:        "/api",
			ShutdownTimeout: time.Second,
		},
		Database: config.DatabaseConfig{Driver: driverSQLite, URL: sqlite.MemoryDSN},
		Auth: config.AuthConfig{
			TokenTTL:    time.Hour,
			BcryptCost:  4,
			TokenHeader: "X-API-Token",
		},
		Telemetry: config.TelemetryConfig{ServiceName: "contacts-api-test"},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *application {
	t.Helper()
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrateDatabase(ctx, cfg.Database.Driver, db))

	app, err := newApplication(cfg, log, db)
	require.NoError(t, err)
	return app
}

func TestApplicationServesAPI(t *testing.T) {
	app := newTestApp(t, testConfig())
	srv := httptest.NewServer(app.handler())
	t.Cleanup(srv.Close)

	resp, err := srv.Client().Post(srv.URL+"/api/users", "application/json",
		strings.NewReader(`{"username":"eko","password":"rahasia","name":"Eko"}`))
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.Client().Post(srv.URL+"/api/auth/login", "application/json",
		strings.NewReader(`{"username":"eko","password":"rahasia"}`))
	require.NoError(t, err)
	var login struct {
		Data struct {
			Token     string `json:"token"`
			ExpiredAt int64  `json:"expiredAt"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	_ = resp.Body.Close()
	assert.NotEmpty(t, login.Data.Token)
	assert.Greater(t, login.Data.ExpiredAt, time.Now().UnixMilli())

	resp, err = srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Contains(t, string(body), "go_goroutines")
	assert.Contains(t, string(body), "contacts_login_attempts_total")
}

func TestUnsupportedDriver(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := setupAppDatabase(context.Background(), config.DatabaseConfig{Driver: "mysql", URL: "x"}, log)
	assert.ErrorContains(t, err, `unsupported database driver "mysql"`)

	assert.ErrorContains(t, migrateDatabase(context.Background(), "mysql", nil), "unsupported")

	_, _, err = newStores("mysql", nil, log)
	assert.Error(t, err)
}

func TestStartHTTPServerStopsOnCancel(t *testing.T) {
	app := newTestApp(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- app.startHTTPServer(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestLoadAppConfigFromFile(t *testing.T) {
	path := t.TempDir() + "/config.yaml"
	require.NoError(t, os.WriteFile(path, []byte("database:\n  driver: sqlite\n  url: \":memory:\"\n"), 0o600))

	cfg, err := loadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.Database.URL)
}
