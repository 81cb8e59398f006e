// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// CategorySource indicates how a transaction acquired its current category.
type CategorySource string

const (
	// SourceNone means the transaction has not been categorized yet.
	SourceNone CategorySource = ""
	// SourceRule means a user categorization rule matched.
	SourceRule CategorySource = "RULE"
	// SourceBuiltin means a built-in pattern table entry matched.
	SourceBuiltin CategorySource = "BUILTIN"
	// SourceFallback means nothing matched and the generic bucket was used.
	SourceFallback CategorySource = "FALLBACK"
	// SourceUser means the user set the category by hand.
	SourceUser CategorySource = "USER"
)

// Transaction represents a single bank transaction from any import source.
type Transaction struct {
	Date             time.Time
	CreatedAt        time.Time
	ID               string
	Description      string // Raw bank description line
	Type             string // Bank-assigned type (e.g. CB, PRLV, VIR), may be empty
	AccountID        string
	Hash             string
	Category         string
	CategorySource   CategorySource
	Amount           float64
	IsManuallyEdited bool
}

// IsExpense reports whether the transaction is an outflow. Sign convention
// follows bank exports: negative amounts are expenses.
func (t *Transaction) IsExpense() bool {
	return t.Amount < 0
}

// GenerateHash creates a stable hash for duplicate detection across imports.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Description,
		t.AccountID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
