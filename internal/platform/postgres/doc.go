// Package postgres provides the PostgreSQL backend for the stores defined in
// internal/store. It supplies the SQL dialect, error-code mapping, connection
// setup, and embedded goose migrations; the store logic itself lives in
// internal/platform/sqlstore.
package postgres
