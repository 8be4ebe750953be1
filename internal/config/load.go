package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, so server.port is
// read from CONTACTS_SERVER_PORT.
const EnvPrefix = "CONTACTS"

var defaults = map[string]any{
	"server.port":             8080,
	"server.log_level":        "info",
	"server.base_path":        "/api",
	"server.shutdown_timeout": 15 * time.Second,

	"database.driver":         "sqlite",
	"database.url":            "contacts.db",
	"database.max_open_conns": 10,

	"auth.token_ttl":    30 * 24 * time.Hour,
	"auth.bcrypt_cost":  10,
	"auth.token_header": "X-API-Token",

	"telemetry.otlp_endpoint": "",
	"telemetry.service_name":  "contacts-api",
	"telemetry.environment":   "development",
}

// Load configuration from environment variables and an optional config.yaml
// in the working directory. Environment variables take precedence over values
// from the file. Returns a populated Config struct or an error if
// loading/validation fails.
func Load() (*Config, error) {
	return load("")
}

// LoadFile behaves like Load but reads the named config file, which must exist.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config file path is empty")
	}
	return load(path)
}

func load(path string) (*Config, error) {
	v := viper.New()

	// Every key needs a default, otherwise AutomaticEnv never binds it during Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
