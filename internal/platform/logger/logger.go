// Package logger provides structured logging functionality for the application.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/contacts-api/internal/config"
)

// ParseLevel converts a configured level name (case-insensitive) to a
// slog.Level. Unknown names yield slog.LevelInfo and false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a JSON logger writing to out at the named level.
func New(out io.Writer, level string) *slog.Logger {
	lvl, ok := ParseLevel(level)
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl}))
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}
	return logger
}

// Setup creates the application logger from the server and telemetry
// configuration, tags it with the service name and environment, and installs
// it as the slog default.
func Setup(server config.ServerConfig, telemetry config.TelemetryConfig) *slog.Logger {
	logger := New(os.Stdout, server.LogLevel).With(
		"service", telemetry.ServiceName,
		"environment", telemetry.Environment,
	)
	slog.SetDefault(logger)
	return logger
}
