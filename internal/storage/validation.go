package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/centime/centime/internal/model"
)

// validateContext ensures the context is valid and not cancelled.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
		return nil
	}
}

// validateString ensures a required string field is non-empty.
func validateString(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

// validateRule ensures a rule is structurally valid before persistence.
func validateRule(rule *model.CategorizationRule) error {
	if rule == nil {
		return fmt.Errorf("rule cannot be nil")
	}
	return rule.Validate()
}

// validateTransaction ensures a transaction has the fields the store requires.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("transaction cannot be nil")
	}
	if err := validateString(txn.ID, "transaction ID"); err != nil {
		return err
	}
	if err := validateString(txn.Description, "transaction description"); err != nil {
		return err
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("transaction date cannot be zero")
	}
	return nil
}
