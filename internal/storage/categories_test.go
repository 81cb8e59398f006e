package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centime/centime/internal/classify"
	"github.com/centime/centime/internal/common"
	"github.com/centime/centime/internal/model"
	"github.com/centime/centime/internal/testutil"
)

func TestSeedCategories_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewTestStorage(t)

	before, err := store.ListCategories(ctx)
	require.NoError(t, err)

	// Re-seeding must not duplicate or overwrite.
	require.NoError(t, store.SeedCategories(ctx, classify.DefaultCategories()))

	after, err := store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
}

func TestGetCategory(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewTestStorage(t)

	cat, err := store.GetCategory(ctx, "food-grocery")
	require.NoError(t, err)
	assert.Equal(t, "Courses", cat.Name)
	assert.Equal(t, model.CategoryTypeExpense, cat.Type)

	_, err = store.GetCategory(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestIsIncomeCategory(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewTestStorage(t)

	tests := []struct {
		categoryID string
		want       bool
	}{
		{"salary", true},
		{"virements-recus", true},
		{"food-grocery", false},
		{model.FallbackCategoryID, false},
	}

	for _, tt := range tests {
		t.Run(tt.categoryID, func(t *testing.T) {
			got, err := store.IsIncomeCategory(ctx, tt.categoryID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
