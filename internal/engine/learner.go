package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/centime/centime/internal/common"
	"github.com/centime/centime/internal/keywords"
	"github.com/centime/centime/internal/model"
	"github.com/centime/centime/internal/service"
)

// Learn derives a categorization rule from a user correction. It returns nil
// without error when the description yields no learnable keywords. When an
// existing rule already covers the same merchant the rule is retargeted in
// place instead of creating a near-duplicate; an already-matching rule is
// returned unchanged. Store failures propagate and leave the cached rule
// list untouched.
func (e *Engine) Learn(ctx context.Context, txn model.Transaction, newCategoryID string) (*model.CategorizationRule, error) {
	kws := keywords.Extract(txn.Description)
	if len(kws) == 0 {
		slog.Debug("No learnable keywords in description", "description", txn.Description)
		return nil, nil
	}
	pattern := keywords.BuildPattern(kws)

	if _, err := e.store.GetCategory(ctx, newCategoryID); err != nil {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownCategory, newCategoryID)
	}

	existing, err := e.store.ListRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}

	if similar := findSimilarRule(existing, pattern, kws[0]); similar != nil {
		if similar.CategoryID == newCategoryID {
			return similar, nil
		}
		patch := service.RulePatch{CategoryID: &newCategoryID}
		if err := e.store.UpdateRule(ctx, similar.ID, patch); err != nil {
			return nil, fmt.Errorf("failed to retarget rule %d: %w", similar.ID, err)
		}
		similar.CategoryID = newCategoryID
		if err := e.LoadRules(ctx); err != nil {
			return nil, err
		}
		slog.Info("Retargeted existing rule",
			"rule_id", similar.ID,
			"pattern", similar.Pattern,
			"category", newCategoryID)
		return similar, nil
	}

	rule := &model.CategorizationRule{
		CategoryID: newCategoryID,
		Pattern:    pattern,
		Field:      model.FieldDescription,
		Priority:   model.LearnedRulePriority,
		IsActive:   true,
	}
	if err := e.store.AddRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to save learned rule: %w", err)
	}
	if err := e.LoadRules(ctx); err != nil {
		return nil, err
	}

	slog.Info("Learned new rule",
		"rule_id", rule.ID,
		"pattern", rule.Pattern,
		"category", rule.CategoryID)
	return rule, nil
}

// findSimilarRule looks for a rule already covering the same merchant:
// exact case-insensitive pattern equality, or an existing pattern containing
// the new first keyword. The containment check is a deliberate approximation;
// it keeps repeated corrections for one merchant from piling up rules even
// when keyword extraction drifts slightly between statements.
func findSimilarRule(rules []model.CategorizationRule, pattern, firstKeyword string) *model.CategorizationRule {
	patternLower := strings.ToLower(pattern)
	keywordLower := strings.ToLower(firstKeyword)

	for i := range rules {
		existing := strings.ToLower(rules[i].Pattern)
		if existing == patternLower || strings.Contains(existing, keywordLower) {
			return &rules[i]
		}
	}
	return nil
}
