// Package testutil provides shared helpers for tests that need a real store.
package testutil

import (
	"context"
	"testing"

	"github.com/centime/centime/internal/classify"
	"github.com/centime/centime/internal/storage"
)

// NewTestStorage creates an in-memory SQLite store, runs migrations, seeds
// the default category set and registers cleanup.
func NewTestStorage(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	if err := store.SeedCategories(ctx, classify.DefaultCategories()); err != nil {
		t.Fatalf("failed to seed categories: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
