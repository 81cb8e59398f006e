// Package importer parses bank statement files into transactions.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/centime/centime/internal/model"
)

// csv column layout: date, description, type, amount. A header row is
// detected and skipped when the first field does not parse as a date.
var csvDateFormats = []string{"2006-01-02", "02/01/2006", "02/01/06"}

// CSVParser parses bank CSV exports.
type CSVParser struct {
	accountID string
	delimiter rune
}

// NewCSVParser creates a CSV parser tagging transactions with accountID.
// French bank exports commonly use semicolons; pass 0 for the comma default.
func NewCSVParser(accountID string, delimiter rune) *CSVParser {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVParser{accountID: accountID, delimiter: delimiter}
}

// Parse reads a CSV statement and returns transactions with fresh IDs and
// deduplication hashes.
func (p *CSVParser) Parse(reader io.Reader) ([]model.Transaction, error) {
	r := csv.NewReader(reader)
	r.Comma = p.delimiter
	r.FieldsPerRecord = -1

	var transactions []model.Transaction
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		line++

		if len(record) < 4 {
			return nil, fmt.Errorf("line %d: expected at least 4 columns, got %d", line, len(record))
		}

		date, err := parseCSVDate(record[0])
		if err != nil {
			if line == 1 {
				// Header row
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		amount, err := parseAmount(record[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		txn := model.Transaction{
			ID:          uuid.NewString(),
			Date:        date,
			Description: strings.TrimSpace(record[1]),
			Type:        strings.TrimSpace(record[2]),
			Amount:      amount,
			AccountID:   p.accountID,
		}
		txn.Hash = txn.GenerateHash()
		transactions = append(transactions, txn)
	}

	return transactions, nil
}

func parseCSVDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, format := range csvDateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// parseAmount accepts both "1234.56" and the French "1 234,56" convention.
func parseAmount(value string) (float64, error) {
	value = strings.TrimSpace(value)
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, " ", "")
	if strings.Contains(value, ",") && !strings.Contains(value, ".") {
		value = strings.ReplaceAll(value, ",", ".")
	}
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("unrecognized amount %q", value)
	}
	return amount, nil
}
