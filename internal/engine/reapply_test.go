package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centime/centime/internal/model"
)

func seedTransactions(t *testing.T, eng *Engine, txns []model.Transaction) {
	t.Helper()
	_, err := eng.store.SaveTransactions(context.Background(), txns)
	require.NoError(t, err)
}

func TestReapplyAll_PropagatesLearnedRule(t *testing.T) {
	ctx := context.Background()
	eng, store := newTestEngine(t)

	seedTransactions(t, eng, []model.Transaction{
		{
			ID:          "txn-1",
			Date:        time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC),
			Description: "NETFLIX.COM 866-579-7172",
			Amount:      -17.99,
			Category:    model.FallbackCategoryID,
		},
		{
			ID:          "txn-2",
			Date:        time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
			Description: "NETFLIX.COM 866-579-7172",
			Amount:      -17.99,
			Category:    model.FallbackCategoryID,
		},
	})

	// User corrects the first occurrence; the second, unedited one is
	// reclassified by the bulk pass through the learned rule.
	rule, err := eng.Recategorize(ctx, "txn-1", "abonnements")
	require.NoError(t, err)
	require.NotNil(t, rule)
	assert.Equal(t, "NETFLIX", rule.Pattern)

	updated, err := eng.ReapplyAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	second, err := store.GetTransaction(ctx, "txn-2")
	require.NoError(t, err)
	assert.Equal(t, "abonnements", second.Category)
	assert.Equal(t, model.SourceRule, second.CategorySource)
	assert.False(t, second.IsManuallyEdited)

	first, err := store.GetTransaction(ctx, "txn-1")
	require.NoError(t, err)
	assert.Equal(t, "abonnements", first.Category)
	assert.True(t, first.IsManuallyEdited)
	assert.Equal(t, model.SourceUser, first.CategorySource)
}

func TestReapplyAll_Idempotent(t *testing.T) {
	ctx := context.Background()
	eng, _ := newTestEngine(t)

	seedTransactions(t, eng, []model.Transaction{
		{
			ID:          "txn-1",
			Date:        time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC),
			Description: "X6374 MP*CARREFOUR REIMS 10/11",
			Type:        "CB",
			Amount:      -54.30,
			Category:    model.FallbackCategoryID,
		},
		{
			ID:          "txn-2",
			Date:        time.Date(2024, 11, 12, 0, 0, 0, 0, time.UTC),
			Description: "SPOTIFY P2E4A8",
			Type:        "CB",
			Amount:      -9.99,
			Category:    model.FallbackCategoryID,
		},
	})

	updated, err := eng.ReapplyAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	// No intervening rule changes: the second pass must be a no-op.
	updated, err = eng.ReapplyAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, updated)
}

func TestReapplyAll_NeverTouchesManuallyEdited(t *testing.T) {
	ctx := context.Background()
	eng, store := newTestEngine(t)

	seedTransactions(t, eng, []model.Transaction{
		{
			ID:          "txn-1",
			Date:        time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC),
			Description: "CARREFOUR REIMS",
			Amount:      -54.30,
			Category:    model.FallbackCategoryID,
		},
	})

	// Pin the transaction to a category the rules would disagree with.
	require.NoError(t, store.SetTransactionCategoryManual(ctx, "txn-1", "shopping"))

	updated, err := eng.ReapplyAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, updated)

	txn, err := store.GetTransaction(ctx, "txn-1")
	require.NoError(t, err)
	assert.Equal(t, "shopping", txn.Category)
	assert.True(t, txn.IsManuallyEdited)
}

func TestReapplyAll_WritesOnlyOnChange(t *testing.T) {
	ctx := context.Background()
	eng, _ := newTestEngine(t)

	seedTransactions(t, eng, []model.Transaction{
		{
			ID:             "txn-1",
			Date:           time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC),
			Description:    "CARREFOUR REIMS",
			Amount:         -54.30,
			Category:       "food-grocery",
			CategorySource: model.SourceBuiltin,
		},
	})

	updated, err := eng.ReapplyAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, updated)
}

func TestReapplyAll_ReportsProgress(t *testing.T) {
	ctx := context.Background()
	eng, _ := newTestEngine(t)

	seedTransactions(t, eng, []model.Transaction{
		{
			ID:          "txn-1",
			Date:        time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC),
			Description: "CARREFOUR REIMS",
			Amount:      -54.30,
			Category:    model.FallbackCategoryID,
		},
		{
			ID:          "txn-2",
			Date:        time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC),
			Description: "SNCF INTERNET",
			Amount:      -32.00,
			Category:    model.FallbackCategoryID,
		},
	})

	var calls int
	var lastTotal int
	_, err := eng.ReapplyAll(ctx, func(done, total int) {
		calls++
		lastTotal = total
		assert.Equal(t, calls, done)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, lastTotal)
}
