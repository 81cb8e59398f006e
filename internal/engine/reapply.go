package engine

import (
	"context"
	"fmt"
)

// ReapplyAll re-runs classification over every stored transaction that has
// not been manually edited, writing back only categories that actually
// change. Returns the number of transactions updated. Rules are loaded once
// per run, so the pass is a pure function of (rules, transactions): a second
// run with no intervening rule changes updates nothing.
//
// progress, when non-nil, is called after each transaction with the number
// processed so far and the total.
func (e *Engine) ReapplyAll(ctx context.Context, progress func(done, total int)) (int, error) {
	if err := e.LoadRules(ctx); err != nil {
		return 0, err
	}

	txns, err := e.store.ListTransactions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	updated := 0
	for i, txn := range txns {
		if progress != nil {
			progress(i+1, len(txns))
		}
		if txn.IsManuallyEdited {
			continue
		}

		result := e.ClassifyTransaction(txn)
		if result.CategoryID == "" || result.CategoryID == txn.Category {
			continue
		}

		if err := e.store.UpdateTransactionCategory(ctx, txn.ID, result.CategoryID, result.Source); err != nil {
			return updated, fmt.Errorf("failed to update transaction %s: %w", txn.ID, err)
		}
		updated++
	}

	return updated, nil
}
