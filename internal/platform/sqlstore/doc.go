// Package sqlstore implements store.UserStore and store.ContactStore on top
// of database/sql. The SQL text and driver error mapping come from a Dialect,
// so the same code serves PostgreSQL and SQLite.
package sqlstore
