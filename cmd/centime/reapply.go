package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/centime/centime/internal/cli"
)

func reapplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reapply",
		Short: "Re-run classification over all stored transactions",
		Long: `Reapply the current rules and pattern table to every stored transaction.
Manually edited transactions are never touched; only categories that
actually change are written. Running it twice in a row is a no-op.`,
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

			eng, err := newEngine(ctx, store)
			if err != nil {
				return err
			}

			var bar *progressbar.ProgressBar
			updated, err := eng.ReapplyAll(ctx, func(done, total int) {
				if bar == nil {
					bar = progressbar.Default(int64(total), "reapplying")
				}
				_ = bar.Set(done)
			})
			if err != nil {
				return fmt.Errorf("failed to reapply rules: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render( //nolint:forbidigo // User-facing output
				fmt.Sprintf("Updated %d transactions", updated)))
			return nil
		},
	}
}
