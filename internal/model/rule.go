package model

import (
	"fmt"
	"strings"
	"time"
)

// RuleField names the transaction attribute a rule pattern is tested against.
type RuleField string

const (
	// FieldDescription matches against the raw bank description.
	FieldDescription RuleField = "description"
	// FieldType matches against the bank-assigned transaction type.
	FieldType RuleField = "type"
)

// LearnedRulePriority is the priority assigned to rules produced by the
// learner. User rules always outrank the built-in pattern table, and a fixed
// elevated value keeps newly learned rules from churning relative order.
const LearnedRulePriority = 100

// CategorizationRule maps a text pattern to a target category. Rules are
// evaluated in descending-priority order; ties keep insertion order.
type CategorizationRule struct {
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CategoryID string
	Pattern    string // Case-insensitive pattern over the selected field
	Field      RuleField
	ID         int64
	Priority   int
	IsActive   bool
}

// Validate checks structural validity before persistence.
func (r *CategorizationRule) Validate() error {
	if strings.TrimSpace(r.Pattern) == "" {
		return fmt.Errorf("rule pattern cannot be empty")
	}
	if strings.TrimSpace(r.CategoryID) == "" {
		return fmt.Errorf("rule category cannot be empty")
	}
	switch r.Field {
	case FieldDescription, FieldType:
	default:
		return fmt.Errorf("invalid rule field %q", r.Field)
	}
	return nil
}
