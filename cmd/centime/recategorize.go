package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/centime/centime/internal/cli"
)

func recategorizeCmd() *cobra.Command {
	var propagate bool

	cmd := &cobra.Command{
		Use:   "recategorize <transaction-id> <category-id>",
		Short: "Manually set a transaction's category and learn a rule from it",
		Long: `Set a transaction's category by hand. The transaction is pinned against
automatic reclassification, and a categorization rule is learned from its
description so future matching transactions land in the same category.

Examples:
  centime recategorize 3f1c... abonnements
  centime recategorize 3f1c... food-grocery --propagate`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			transactionID, categoryID := args[0], args[1]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("failed to close storage", "error", closeErr)
				}
			}()

			eng, err := newEngine(ctx, store)
			if err != nil {
				return err
			}

			txn, err := store.GetTransaction(ctx, transactionID)
			if err != nil {
				return err
			}
			fmt.Printf("Previous category: %s (%s)\n", //nolint:forbidigo // User-facing output
				txn.Category, describeSource(txn.CategorySource))

			rule, err := eng.Recategorize(ctx, transactionID, categoryID)
			if err != nil {
				return fmt.Errorf("failed to recategorize: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render( //nolint:forbidigo // User-facing output
				fmt.Sprintf("Transaction set to %q", categoryID)))
			if rule != nil {
				fmt.Println(cli.InfoStyle.Render( //nolint:forbidigo // User-facing output
					fmt.Sprintf("Learned rule %d: pattern %q -> %s", rule.ID, rule.Pattern, rule.CategoryID)))
			} else {
				fmt.Println(cli.SubtleStyle.Render("No learnable keywords in description; no rule created")) //nolint:forbidigo // User-facing output
			}

			if propagate {
				updated, err := eng.ReapplyAll(ctx, nil)
				if err != nil {
					return fmt.Errorf("failed to reapply rules: %w", err)
				}
				fmt.Println(cli.InfoStyle.Render( //nolint:forbidigo // User-facing output
					fmt.Sprintf("Reclassified %d other transactions", updated)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&propagate, "propagate", false, "reapply rules to all transactions afterwards")
	return cmd
}
