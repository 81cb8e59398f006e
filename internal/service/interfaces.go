// Package service defines the interfaces between the categorization engine
// and its collaborators.
package service

import (
	"context"

	"github.com/centime/centime/internal/model"
)

// RulePatch holds partial updates for a categorization rule. Nil fields are
// left untouched.
type RulePatch struct {
	CategoryID *string
	Pattern    *string
	Field      *model.RuleField
	Priority   *int
	IsActive   *bool
}

// ImportResult summarizes a statement import.
type ImportResult struct {
	Imported   int
	Duplicates int
}

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Transaction operations
	SaveTransactions(ctx context.Context, transactions []model.Transaction) (ImportResult, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	UpdateTransactionCategory(ctx context.Context, id, categoryID string, source model.CategorySource) error
	SetTransactionCategoryManual(ctx context.Context, id, categoryID string) error

	// Rule operations
	ListActiveRules(ctx context.Context) ([]model.CategorizationRule, error)
	ListRules(ctx context.Context) ([]model.CategorizationRule, error)
	AddRule(ctx context.Context, rule *model.CategorizationRule) error
	UpdateRule(ctx context.Context, id int64, patch RulePatch) error
	DeleteRule(ctx context.Context, id int64) error

	// Category registry
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	IsIncomeCategory(ctx context.Context, id string) (bool, error)
	SeedCategories(ctx context.Context, categories []model.Category) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
