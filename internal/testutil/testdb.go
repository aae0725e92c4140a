package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/brimline/capquote/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewSeededTestDB returns a test database with the factory price book loaded.
func NewSeededTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database := NewTestDB(t)
	if err := db.SeedPriceBook(context.Background(), database); err != nil {
		t.Fatalf("failed to seed price book: %v", err)
	}
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
