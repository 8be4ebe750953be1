// Package testdb provides database setup for tests.
//
// SQLite databases are created in memory, migrated, and closed when the test
// finishes, so every test that needs a store can have a private one:
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.NewSQLite(t)
//	    users := sqlite.NewUserStore(db, slog.Default())
//	    ...
//	}
//
// PostgreSQL databases are shared and only available when DATABASE_URL (or
// CONTACTS_TEST_DB_URL) is set; NewPostgres skips the calling test otherwise
// and empties the tables before handing the connection over.
package testdb
