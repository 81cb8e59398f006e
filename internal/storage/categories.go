package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/centime/centime/internal/common"
	"github.com/centime/centime/internal/model"
)

// SeedCategories inserts the given categories if they do not already exist.
// Existing rows are left untouched so user edits survive re-seeding.
func (s *SQLiteStorage) SeedCategories(ctx context.Context, categories []model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	for _, cat := range categories {
		_, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO categories (id, name, type, is_active) VALUES (?, ?, ?, ?)`,
			cat.ID, cat.Name, string(cat.Type), cat.IsActive)
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", cat.ID, err)
		}
	}
	return nil
}

// ListCategories returns all active categories ordered by name.
func (s *SQLiteStorage) ListCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, type, is_active, created_at
		 FROM categories WHERE is_active = 1 ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		var catType string
		if err := rows.Scan(&cat.ID, &cat.Name, &catType, &cat.IsActive, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cat.Type = model.CategoryType(catType)
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// GetCategory retrieves a category by its identifier.
func (s *SQLiteStorage) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "category ID"); err != nil {
		return nil, err
	}

	var cat model.Category
	var catType string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, type, is_active, created_at FROM categories WHERE id = ?`,
		id).Scan(&cat.ID, &cat.Name, &catType, &cat.IsActive, &cat.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %q: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	cat.Type = model.CategoryType(catType)
	return &cat, nil
}

// IsIncomeCategory reports whether the category belongs to the income
// partition. The fallback "any" type is not income.
func (s *SQLiteStorage) IsIncomeCategory(ctx context.Context, id string) (bool, error) {
	cat, err := s.GetCategory(ctx, id)
	if err != nil {
		return false, err
	}
	return cat.IsIncome(), nil
}
