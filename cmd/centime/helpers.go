package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/centime/centime/internal/classify"
	"github.com/centime/centime/internal/engine"
	"github.com/centime/centime/internal/storage"
)

// initStorage opens the configured database, applies migrations and seeds
// the built-in category set.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "centime", "centime.db")
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}
	if err := store.SeedCategories(ctx, classify.DefaultCategories()); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to seed categories: %w", err)
	}

	return store, nil
}

// newEngine builds the engine over the store with persisted rules loaded.
func newEngine(ctx context.Context, store *storage.SQLiteStorage) (*engine.Engine, error) {
	categorizer := classify.New(classify.DefaultPatterns())
	eng := engine.New(store, categorizer)
	if err := eng.LoadRules(ctx); err != nil {
		return nil, err
	}
	return eng, nil
}
