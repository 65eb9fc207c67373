package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/tododb/tododb-go/internal/repository"
)

// NewSQLiteDB creates a migrated SQLite database in a per-test temp directory.
// The pool is closed when the test finishes.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tododb.db")
	if err := repository.Migrate(repository.DriverSQLite, path); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	db, err := repository.NewDB(repository.DriverSQLite, path)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}
