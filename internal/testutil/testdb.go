package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/timeplan/internal/db"
)

// NewTestDB opens a migrated in-memory plan store scoped to one test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}
