package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// CardParser parses credit card activity exports:
//
//	Transaction Date,Post Date,Description,Category,Type,Amount,Memo
//
// Columns are positional. A Memo column is dropped wherever it appears.
// Debits are encoded as negative amounts; only those are kept, sign-flipped.
type CardParser struct{}

const (
	cardNumColumns = 6
	cardColTxnDate = 0
	cardColPost    = 1
	cardColDesc    = 2
	cardColCat     = 3
	cardColType    = 4
	cardColAmount  = 5
	memoColumn     = "memo"
)

var cardColumnNames = [cardNumColumns]string{
	"transaction_date", "post_date", "description", "category", "type", "amount",
}

// Format returns the parser name.
func (p *CardParser) Format() string { return "card" }

// Parse reads a card CSV and returns its debits as canonical transactions,
// stable-sorted by transaction date.
func (p *CardParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading card CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	keep, err := cardColumns(header)
	if err != nil {
		return nil, err
	}
	if len(records) == 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		row := i + 2
		if len(rec) != len(header) {
			return nil, &SchemaError{Row: row, Reason: fmt.Sprintf("expected %d fields, got %d", len(header), len(rec))}
		}
		fields := make([]string, 0, cardNumColumns)
		for _, idx := range keep {
			fields = append(fields, rec[idx])
		}
		txn, ok, err := parseCardRow(fields, row)
		if err != nil {
			return nil, err
		}
		if ok {
			txns = append(txns, txn)
		}
	}

	slices.SortStableFunc(txns, func(a, b model.Transaction) int {
		return a.Date.Compare(b.Date)
	})
	return txns, nil
}

// cardColumns returns the indexes of the six data columns in header order.
func cardColumns(header []string) ([]int, error) {
	keep := make([]int, 0, len(header))
	for i, h := range header {
		if normalizeHeader(h) == memoColumn {
			continue
		}
		keep = append(keep, i)
	}
	if len(keep) != cardNumColumns {
		return nil, &SchemaError{
			Row:    1,
			Reason: fmt.Sprintf("expected %d columns (excluding memo), got %d", cardNumColumns, len(keep)),
		}
	}
	return keep, nil
}

// parseCardRow returns ok=false for credits, payments and returns.
func parseCardRow(rec []string, row int) (model.Transaction, bool, error) {
	date, err := ParseDate(rec[cardColTxnDate])
	if err != nil {
		return model.Transaction{}, false, &ParseError{Row: row, Column: cardColumnNames[cardColTxnDate], Value: rec[cardColTxnDate], Err: err}
	}

	// Validated even though the posting date is not part of the model.
	if _, err := ParseDate(rec[cardColPost]); err != nil {
		return model.Transaction{}, false, &ParseError{Row: row, Column: cardColumnNames[cardColPost], Value: rec[cardColPost], Err: err}
	}

	amount, err := ParseAmount(rec[cardColAmount])
	if err != nil {
		return model.Transaction{}, false, &ParseError{Row: row, Column: cardColumnNames[cardColAmount], Value: rec[cardColAmount], Err: err}
	}

	// Zero-amount debits cannot satisfy Amount > 0 once negated.
	if !amount.IsNegative() {
		return model.Transaction{}, false, nil
	}

	return model.NewTransaction(date, rec[cardColDesc], rec[cardColCat], rec[cardColType], amount.Neg()), true, nil
}
