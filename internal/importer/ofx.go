package importer

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/centime/centime/internal/model"
)

// OFXParser parses OFX/QFX statement files.
type OFXParser struct{}

// NewOFXParser creates a new OFX parser.
func NewOFXParser() *OFXParser {
	return &OFXParser{}
}

var severityRe = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)

// preprocessOFX fixes common formatting issues in bank-produced OFX files.
func (p *OFXParser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	content = severityRe.ReplaceAllStringFunc(content, strings.ToUpper)

	return content
}

// Parse reads an OFX/QFX statement and returns transactions.
func (p *OFXParser) Parse(reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		accountID := string(stmt.BankAcctFrom.AcctID)
		for _, ofxTx := range stmt.BankTranList.Transactions {
			transactions = append(transactions, p.convertTransaction(ofxTx, accountID))
		}
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		accountID := string(stmt.CCAcctFrom.AcctID)
		for _, ofxTx := range stmt.BankTranList.Transactions {
			transactions = append(transactions, p.convertTransaction(ofxTx, accountID))
		}
	}

	slog.Info("Parsed OFX file", "transactions", len(transactions))
	return transactions, nil
}

// convertTransaction maps an OFX transaction onto our model. The signed OFX
// amount is kept as-is: debits are negative, credits positive.
func (p *OFXParser) convertTransaction(ofxTx ofxgo.Transaction, accountID string) model.Transaction {
	amount, _ := ofxTx.TrnAmt.Float64()

	description := string(ofxTx.Name)
	if ofxTx.Memo != "" && len(description) < len(string(ofxTx.Memo)) {
		description = string(ofxTx.Memo)
	}

	txn := model.Transaction{
		ID:          string(ofxTx.FiTID),
		Date:        ofxTx.DtPosted.Time,
		Description: strings.TrimSpace(description),
		Type:        fmt.Sprintf("%v", ofxTx.TrnType),
		Amount:      amount,
		AccountID:   accountID,
	}
	txn.Hash = txn.GenerateHash()
	return txn
}
