package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/centime/centime/internal/cli"
	"github.com/centime/centime/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
	}
	cmd.AddCommand(categoriesListCmd())
	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
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

			categories, err := store.ListCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render("Categories")) //nolint:forbidigo // User-facing output
			for _, cat := range categories {
				class := string(cat.Type)
				if cat.Type == model.CategoryTypeAny {
					class = "any (fallback)"
				}
				fmt.Printf("  %-18s %-20s %s\n", cat.ID, cat.Name, cli.SubtleStyle.Render(class)) //nolint:forbidigo // User-facing output
			}
			return nil
		},
	}
}
