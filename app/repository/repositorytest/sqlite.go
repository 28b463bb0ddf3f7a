// Package repositorytest opens throwaway migrated stores for tests.
package repositorytest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/vibast-solutions/ms-go-authn/app/repository"
)

const sqlitePragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

// NewSQLite returns a migrated SQLite database living in t.TempDir().
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "authn.db") + sqlitePragmas
	db, err := repository.Open(context.Background(), repository.DialectSQLite, dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = repository.Migrate(context.Background(), db, repository.DialectSQLite); err != nil {
		t.Fatalf("failed to migrate sqlite store: %v", err)
	}
	return db
}
