// Package engine orchestrates classification, rule learning and bulk
// reapplication over the persistent store.
package engine

import (
	"context"
	"fmt"

	"github.com/centime/centime/internal/classify"
	"github.com/centime/centime/internal/model"
	"github.com/centime/centime/internal/service"
)

// Engine owns the single cached Categorizer and the storage handle. All rule
// mutations flow through the engine so the cached rule list is rebuilt
// wholesale before any subsequent classification can observe them.
type Engine struct {
	store       service.Storage
	categorizer *classify.Categorizer
}

// New creates an engine over the given store and categorizer. Call LoadRules
// before classifying to pick up persisted rules.
func New(store service.Storage, categorizer *classify.Categorizer) *Engine {
	return &Engine{
		store:       store,
		categorizer: categorizer,
	}
}

// LoadRules reloads the active rule set from the store and replaces the
// categorizer's rule list. This is the single cache-invalidation point.
func (e *Engine) LoadRules(ctx context.Context) error {
	rules, err := e.store.ListActiveRules(ctx)
	if err != nil {
		return fmt.Errorf("failed to load rules: %w", err)
	}
	e.categorizer.SetRules(rules)
	return nil
}

// Classify resolves a category for the given description and type.
// isExpense may be nil when the direction is unknown.
func (e *Engine) Classify(description, txnType string, isExpense *bool) string {
	return e.categorizer.Classify(description, txnType, isExpense)
}

// ClassifyTransaction resolves a category for a stored transaction.
func (e *Engine) ClassifyTransaction(txn model.Transaction) classify.Result {
	isExpense := txn.IsExpense()
	return e.categorizer.ClassifyDetail(txn.Description, txn.Type, &isExpense)
}

// Recategorize records a manual category choice for a transaction, pinning it
// against automatic reclassification, and learns a rule from the correction.
func (e *Engine) Recategorize(ctx context.Context, transactionID, categoryID string) (*model.CategorizationRule, error) {
	txn, err := e.store.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}

	if err := e.store.SetTransactionCategoryManual(ctx, transactionID, categoryID); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return e.Learn(ctx, *txn, categoryID)
}
