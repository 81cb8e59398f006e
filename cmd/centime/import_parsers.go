package main

import (
	"fmt"
	"io"

	"github.com/centime/centime/internal/importer"
	"github.com/centime/centime/internal/model"
)

func importCSV(file io.Reader, accountID, delimiter string) ([]model.Transaction, error) {
	var delim rune
	for _, r := range delimiter {
		delim = r
		break
	}
	parser := importer.NewCSVParser(accountID, delim)
	transactions, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return transactions, nil
}

func importOFX(file io.Reader) ([]model.Transaction, error) {
	parser := importer.NewOFXParser()
	transactions, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX: %w", err)
	}
	return transactions, nil
}
