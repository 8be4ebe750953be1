// Package store defines the persistence contracts for users and contacts.
// Implementations live under internal/platform (postgres, sqlite); services
// depend only on these interfaces and receive a store handle at construction.
package store
