package testutil

import (
	"database/sql"
	"testing"

	"github.com/attuneapp/attune/internal/db"
)

// NewTestDB opens a migrated in-memory plan-history store scoped to the
// test's lifetime.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	store, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// NewTestUoW wraps a test store in the real unit of work, so repository
// tests exercise the same transaction path production uses.
func NewTestUoW(store *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(store)
}
