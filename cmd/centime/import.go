package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/centime/centime/internal/cli"
	"github.com/centime/centime/internal/model"
)

func importCmd() *cobra.Command {
	var (
		accountID string
		delimiter string
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank statement (CSV or OFX/QFX)",
		Long: `Import transactions from a bank statement file. Rows already present
(by transaction hash) are skipped. Imported transactions are classified
immediately using the current rules and the built-in pattern table.

Examples:
  centime import statement.csv --account checking
  centime import statement.csv --delimiter ";"
  centime import statement.ofx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer func() {
				_ = file.Close()
			}()

			transactions, err := parseStatement(file, path, accountID, delimiter)
			if err != nil {
				return err
			}
			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found in file")) //nolint:forbidigo // User-facing output
				return nil
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

			// Classify on ingest
			for i := range transactions {
				result := eng.ClassifyTransaction(transactions[i])
				transactions[i].Category = result.CategoryID
				transactions[i].CategorySource = result.Source
			}

			res, err := store.SaveTransactions(ctx, transactions)
			if err != nil {
				return fmt.Errorf("failed to save transactions: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render( //nolint:forbidigo // User-facing output
				fmt.Sprintf("Imported %d transactions (%d duplicates skipped)", res.Imported, res.Duplicates)))
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "account identifier to tag imported transactions with")
	cmd.Flags().StringVar(&delimiter, "delimiter", ",", "CSV field delimiter")
	return cmd
}

func parseStatement(file io.Reader, path, accountID, delimiter string) ([]model.Transaction, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ofx", ".qfx":
		return importOFX(file)
	case ".csv":
		return importCSV(file, accountID, delimiter)
	default:
		return nil, fmt.Errorf("unsupported file type %q (expected .csv, .ofx or .qfx)", filepath.Ext(path))
	}
}
