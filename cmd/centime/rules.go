package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"github.com/centime/centime/internal/cli"
	"github.com/centime/centime/internal/model"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage categorization rules",
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesAddCmd())
	cmd.AddCommand(rulesDeleteCmd())
	cmd.AddCommand(rulesDupesCmd())
	return cmd
}

func rulesListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categorization rules in evaluation order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("failed to close storage", "error", closeErr)
				}
			}()

			rules, err := store.ListRules(ctx)
			if err != nil {
				return fmt.Errorf("failed to list rules: %w", err)
			}

			if len(rules) == 0 {
				fmt.Println(cli.InfoStyle.Render("No rules defined yet")) //nolint:forbidigo // User-facing output
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Categorization rules")) //nolint:forbidigo // User-facing output
			for _, rule := range rules {
				if !all && !rule.IsActive {
					continue
				}
				status := ""
				if !rule.IsActive {
					status = cli.SubtleStyle.Render(" (inactive)")
				}
				fmt.Printf("  %4d  p%-4d %-11s %-40q -> %s%s\n", //nolint:forbidigo // User-facing output
					rule.ID, rule.Priority, rule.Field, rule.Pattern, rule.CategoryID, status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include inactive rules")
	return cmd
}

func rulesAddCmd() *cobra.Command {
	var (
		field    string
		priority int
	)

	cmd := &cobra.Command{
		Use:   "add <pattern> <category-id>",
		Short: "Add a categorization rule",
		Long: `Add a rule matching the given pattern (case-insensitive) against the
chosen transaction field. Higher-priority rules win.

Examples:
  centime rules add "CARREFOUR" custom-grocery --priority 100
  centime rules add "^VIR" virements-recus --field type`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("failed to close storage", "error", closeErr)
				}
			}()

			rule := &model.CategorizationRule{
				Pattern:    args[0],
				CategoryID: args[1],
				Field:      model.RuleField(field),
				Priority:   priority,
				IsActive:   true,
			}
			if err := store.AddRule(ctx, rule); err != nil {
				return fmt.Errorf("failed to add rule: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render( //nolint:forbidigo // User-facing output
				fmt.Sprintf("Added rule %d: %q -> %s", rule.ID, rule.Pattern, rule.CategoryID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&field, "field", string(model.FieldDescription), "transaction field to match (description or type)")
	cmd.Flags().IntVar(&priority, "priority", model.LearnedRulePriority, "rule priority (higher wins)")
	return cmd
}

func rulesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <rule-id>",
		Short: "Delete a categorization rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid rule ID %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("failed to close storage", "error", closeErr)
				}
			}()

			if err := store.DeleteRule(ctx, id); err != nil {
				return fmt.Errorf("failed to delete rule: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted rule %d", id))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

// rulesDupesCmd reports near-duplicate rule patterns. The learner's own merge
// heuristic only catches exact matches and first-keyword containment, so
// close-but-different patterns for the same merchant can still accumulate;
// this surfaces them for manual cleanup without touching anything.
func rulesDupesCmd() *cobra.Command {
	var maxDistance int

	cmd := &cobra.Command{
		Use:   "dupes",
		Short: "Report near-duplicate rule patterns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("failed to close storage", "error", closeErr)
				}
			}()

			rules, err := store.ListRules(ctx)
			if err != nil {
				return fmt.Errorf("failed to list rules: %w", err)
			}

			found := 0
			for i := 0; i < len(rules); i++ {
				for j := i + 1; j < len(rules); j++ {
					a := strings.ToLower(rules[i].Pattern)
					b := strings.ToLower(rules[j].Pattern)
					if levenshtein.ComputeDistance(a, b) <= maxDistance {
						found++
						fmt.Printf("  rules %d and %d: %q / %q (-> %s / %s)\n", //nolint:forbidigo // User-facing output
							rules[i].ID, rules[j].ID, rules[i].Pattern, rules[j].Pattern,
							rules[i].CategoryID, rules[j].CategoryID)
					}
				}
			}

			if found == 0 {
				fmt.Println(cli.InfoStyle.Render("No near-duplicate rules found")) //nolint:forbidigo // User-facing output
			} else {
				fmt.Println(cli.WarningStyle.Render( //nolint:forbidigo // User-facing output
					fmt.Sprintf("%d near-duplicate pairs; review with 'centime rules delete'", found)))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDistance, "max-distance", 3, "maximum edit distance to report")
	return cmd
}
