package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/centime/centime/internal/model"
	"github.com/centime/centime/internal/service"
)

const ruleColumns = `id, category_id, pattern, field, priority, is_active, created_at, updated_at`

// AddRule persists a new categorization rule. The target category must exist
// and be active; the rule is rejected before any write otherwise.
func (s *SQLiteStorage) AddRule(ctx context.Context, rule *model.CategorizationRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRule(rule); err != nil {
		return err
	}

	// Verify category exists
	var categoryCount int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM categories WHERE id = ? AND is_active = 1",
		rule.CategoryID).Scan(&categoryCount)
	if err != nil {
		return fmt.Errorf("failed to verify category: %w", err)
	}
	if categoryCount == 0 {
		return fmt.Errorf("category %q does not exist or is inactive", rule.CategoryID)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO categorization_rules (category_id, pattern, field, priority, is_active)
		 VALUES (?, ?, ?, ?, ?)`,
		rule.CategoryID, rule.Pattern, string(rule.Field), rule.Priority, rule.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create rule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get rule ID: %w", err)
	}

	rule.ID = id
	rule.CreatedAt = time.Now()
	rule.UpdatedAt = time.Now()
	return nil
}

// UpdateRule applies a partial update to an existing rule.
func (s *SQLiteStorage) UpdateRule(ctx context.Context, id int64, patch service.RulePatch) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	setClauses := []string{"updated_at = CURRENT_TIMESTAMP"}
	args := []any{}

	if patch.CategoryID != nil {
		var categoryCount int
		err := s.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM categories WHERE id = ? AND is_active = 1",
			*patch.CategoryID).Scan(&categoryCount)
		if err != nil {
			return fmt.Errorf("failed to verify category: %w", err)
		}
		if categoryCount == 0 {
			return fmt.Errorf("category %q does not exist or is inactive", *patch.CategoryID)
		}
		setClauses = append(setClauses, "category_id = ?")
		args = append(args, *patch.CategoryID)
	}
	if patch.Pattern != nil {
		setClauses = append(setClauses, "pattern = ?")
		args = append(args, *patch.Pattern)
	}
	if patch.Field != nil {
		setClauses = append(setClauses, "field = ?")
		args = append(args, string(*patch.Field))
	}
	if patch.Priority != nil {
		setClauses = append(setClauses, "priority = ?")
		args = append(args, *patch.Priority)
	}
	if patch.IsActive != nil {
		setClauses = append(setClauses, "is_active = ?")
		args = append(args, *patch.IsActive)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE categorization_rules SET %s WHERE id = ?", strings.Join(setClauses, ", "))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update rule: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("rule %d not found", id)
	}
	return nil
}

// DeleteRule removes a rule permanently.
func (s *SQLiteStorage) DeleteRule(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM categorization_rules WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("rule %d not found", id)
	}
	return nil
}

// ListActiveRules returns active rules ordered by descending priority, with
// insertion order breaking ties.
func (s *SQLiteStorage) ListActiveRules(ctx context.Context) ([]model.CategorizationRule, error) {
	return s.listRules(ctx, true)
}

// ListRules returns all rules, active or not, in priority order.
func (s *SQLiteStorage) ListRules(ctx context.Context) ([]model.CategorizationRule, error) {
	return s.listRules(ctx, false)
}

func (s *SQLiteStorage) listRules(ctx context.Context, activeOnly bool) ([]model.CategorizationRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM categorization_rules`, ruleColumns)
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY priority DESC, id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var rules []model.CategorizationRule
	for rows.Next() {
		var rule model.CategorizationRule
		var field string
		if err := rows.Scan(&rule.ID, &rule.CategoryID, &rule.Pattern, &field,
			&rule.Priority, &rule.IsActive, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		rule.Field = model.RuleField(field)
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}
