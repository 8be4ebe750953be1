// Package config loads application settings with viper from defaults, an
// optional config.yaml, and CONTACTS_-prefixed environment variables, then
// validates them with go-playground/validator.
package config
