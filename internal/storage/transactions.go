package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/centime/centime/internal/common"
	"github.com/centime/centime/internal/model"
	"github.com/centime/centime/internal/service"
)

const transactionColumns = `id, hash, date, description, type, amount, account_id,
	category, category_source, is_manually_edited, created_at`

// SaveTransactions persists a batch of transactions, skipping rows whose hash
// already exists. Hashes are computed here when missing.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) (service.ImportResult, error) {
	var res service.ImportResult
	if err := validateContext(ctx); err != nil {
		return res, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO transactions
		 (id, hash, date, description, type, amount, account_id, category, category_source, is_manually_edited)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return res, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i := range transactions {
		txn := &transactions[i]
		if err := validateTransaction(txn); err != nil {
			return res, err
		}
		if txn.Hash == "" {
			txn.Hash = txn.GenerateHash()
		}

		result, err := stmt.ExecContext(ctx,
			txn.ID, txn.Hash, txn.Date, txn.Description, txn.Type, txn.Amount,
			txn.AccountID, txn.Category, string(txn.CategorySource), txn.IsManuallyEdited)
		if err != nil {
			return res, fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return res, fmt.Errorf("failed to check insert result: %w", err)
		}
		if affected == 0 {
			res.Duplicates++
		} else {
			res.Imported++
		}
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("failed to commit transactions: %w", err)
	}
	return res, nil
}

// ListTransactions returns every stored transaction in date order.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM transactions ORDER BY date, id`, transactionColumns)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *txn)
	}
	return transactions, rows.Err()
}

// GetTransaction retrieves a single transaction by ID.
func (s *SQLiteStorage) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "transaction ID"); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE id = ?`, transactionColumns)
	row := s.db.QueryRowContext(ctx, query, id)
	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %q: %w", id, common.ErrNotFound)
	}
	return txn, err
}

// UpdateTransactionCategory writes a new automatically resolved category.
// Manually edited transactions are pinned; attempting to overwrite one is a
// caller bug and is rejected.
func (s *SQLiteStorage) UpdateTransactionCategory(ctx context.Context, id, categoryID string, source model.CategorySource) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET category = ?, category_source = ?
		 WHERE id = ? AND is_manually_edited = 0`,
		categoryID, string(source), id)
	if err != nil {
		return fmt.Errorf("failed to update transaction category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %q not found or manually edited", id)
	}
	return nil
}

// SetTransactionCategoryManual records a user-chosen category and pins the
// transaction against automatic reclassification.
func (s *SQLiteStorage) SetTransactionCategoryManual(ctx context.Context, id, categoryID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var categoryCount int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM categories WHERE id = ? AND is_active = 1",
		categoryID).Scan(&categoryCount)
	if err != nil {
		return fmt.Errorf("failed to verify category: %w", err)
	}
	if categoryCount == 0 {
		return fmt.Errorf("category %q does not exist or is inactive", categoryID)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET category = ?, category_source = ?, is_manually_edited = 1
		 WHERE id = ?`,
		categoryID, string(model.SourceUser), id)
	if err != nil {
		return fmt.Errorf("failed to set transaction category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %q: %w", id, common.ErrNotFound)
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*model.Transaction, error) {
	var txn model.Transaction
	var txnType, accountID, category, source sql.NullString
	err := row.Scan(&txn.ID, &txn.Hash, &txn.Date, &txn.Description, &txnType,
		&txn.Amount, &accountID, &category, &source, &txn.IsManuallyEdited, &txn.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	txn.Type = txnType.String
	txn.AccountID = accountID.String
	txn.Category = category.String
	txn.CategorySource = model.CategorySource(source.String)
	return &txn, nil
}
