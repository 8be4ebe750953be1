// Package sqlite provides the embedded SQLite backend for the stores defined
// in internal/store, built on the pure-Go modernc.org/sqlite driver. It is
// used for single-node deployments and as the in-process database behind the
// store, service, and API tests.
package sqlite
