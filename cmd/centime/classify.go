package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/centime/centime/internal/cli"
	"github.com/centime/centime/internal/model"
)

func classifyCmd() *cobra.Command {
	var (
		txnType string
		expense bool
		income  bool
	)

	cmd := &cobra.Command{
		Use:   "classify <description>",
		Short: "Classify a transaction description",
		Long: `Resolve the category a description would be assigned, using the current
rules and the built-in pattern table. Useful to check what a rule does
before importing.

Examples:
  centime classify "NETFLIX.COM 866-579-7172" --expense
  centime classify "VIR INST DE MATHILDE LE CERF" --income
  centime classify "X6374 MP*CARREFOUR REIMS 10/11" --type CB --expense`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if expense && income {
				return fmt.Errorf("--expense and --income are mutually exclusive")
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

			eng, err := newEngine(ctx, store)
			if err != nil {
				return err
			}

			var isExpense *bool
			if expense || income {
				isExpense = &expense
			}

			categoryID := eng.Classify(args[0], txnType, isExpense)
			if categoryID == "" {
				fmt.Println(cli.WarningStyle.Render("No category resolved")) //nolint:forbidigo // User-facing output
				return nil
			}

			label := categoryID
			if cat, err := store.GetCategory(ctx, categoryID); err == nil {
				label = fmt.Sprintf("%s (%s)", cat.Name, cat.ID)
			}
			fmt.Println(cli.SuccessStyle.Render(label)) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().StringVar(&txnType, "type", "", "bank-assigned transaction type (e.g. CB, PRLV, VIR)")
	cmd.Flags().BoolVar(&expense, "expense", false, "treat the transaction as an expense")
	cmd.Flags().BoolVar(&income, "income", false, "treat the transaction as income")
	return cmd
}

// describeSource renders a category source for display.
func describeSource(source model.CategorySource) string {
	switch source {
	case model.SourceRule:
		return "user rule"
	case model.SourceBuiltin:
		return "built-in pattern"
	case model.SourceFallback:
		return "fallback"
	case model.SourceUser:
		return "manual"
	default:
		return "uncategorized"
	}
}
