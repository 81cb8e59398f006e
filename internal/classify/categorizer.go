// Package classify implements the transaction categorization engine: an
// ordered built-in pattern table plus user-defined categorization rules.
package classify

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/centime/centime/internal/model"
)

// Result describes how a classification was resolved.
type Result struct {
	CategoryID string
	Source     model.CategorySource
	RuleID     int64
}

// Categorizer resolves a category for a transaction description. It holds a
// priority-sorted copy of the active user rules plus the built-in pattern
// table. Rule replacement is wholesale via SetRules; the rule list is never
// partially mutated.
type Categorizer struct {
	compiled map[int64]*regexp.Regexp
	table    []CategoryPatterns
	rules    []model.CategorizationRule
	mu       sync.RWMutex
}

// New creates a Categorizer over the given pattern table with no user rules.
func New(table []CategoryPatterns) *Categorizer {
	return &Categorizer{
		table:    table,
		compiled: make(map[int64]*regexp.Regexp),
	}
}

// SetRules replaces the active rule set. Rules are re-sorted by descending
// priority (stable, so ties keep insertion order) and their patterns are
// compiled once. A rule whose pattern does not compile is logged and skipped
// for all subsequent classifications; it never aborts a batch.
func (c *Categorizer) SetRules(rules []model.CategorizationRule) {
	sorted := make([]model.CategorizationRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})

	compiled := make(map[int64]*regexp.Regexp, len(sorted))
	for _, rule := range sorted {
		if !rule.IsActive {
			continue
		}
		re, err := regexp.Compile("(?i)" + rule.Pattern)
		if err != nil {
			slog.Warn("Skipping rule with invalid pattern",
				"rule_id", rule.ID,
				"pattern", rule.Pattern,
				"error", err)
			continue
		}
		compiled[rule.ID] = re
	}

	c.mu.Lock()
	c.rules = sorted
	c.compiled = compiled
	c.mu.Unlock()
}

// Classify returns the category for the given description and transaction
// type, or the empty string when no fallback category is configured.
// isExpense may be nil when the transaction direction is unknown.
func (c *Categorizer) Classify(description, txnType string, isExpense *bool) string {
	return c.ClassifyDetail(description, txnType, isExpense).CategoryID
}

// ClassifyDetail is Classify with resolution metadata. User rules are
// evaluated first in descending-priority order and apply unconditionally;
// the built-in table is then walked in its fixed order, skipping categories
// whose income/expense class contradicts a known direction. The generic
// fallback is always eligible.
func (c *Categorizer) ClassifyDetail(description, txnType string, isExpense *bool) Result {
	desc := strings.ToLower(strings.TrimSpace(description))
	typ := strings.ToLower(strings.TrimSpace(txnType))

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, rule := range c.rules {
		if !rule.IsActive {
			continue
		}
		re, ok := c.compiled[rule.ID]
		if !ok {
			continue
		}
		field := desc
		if rule.Field == model.FieldType {
			field = typ
		}
		if re.MatchString(field) {
			return Result{CategoryID: rule.CategoryID, Source: model.SourceRule, RuleID: rule.ID}
		}
	}

	hasFallback := false
	for _, entry := range c.table {
		if entry.CategoryID == model.FallbackCategoryID {
			hasFallback = true
		}
		if isExpense != nil && entry.CategoryID != model.FallbackCategoryID && !directionEligible(entry.Type, *isExpense) {
			continue
		}
		for _, pattern := range entry.Patterns {
			p := strings.ToLower(pattern)
			if strings.Contains(desc, p) || (typ != "" && strings.Contains(typ, p)) {
				return Result{CategoryID: entry.CategoryID, Source: model.SourceBuiltin}
			}
		}
	}

	if hasFallback {
		return Result{CategoryID: model.FallbackCategoryID, Source: model.SourceFallback}
	}
	return Result{}
}

// directionEligible reports whether a category class is compatible with the
// known transaction direction.
func directionEligible(t model.CategoryType, isExpense bool) bool {
	switch t {
	case model.CategoryTypeExpense:
		return isExpense
	case model.CategoryTypeIncome:
		return !isExpense
	default:
		return true
	}
}
