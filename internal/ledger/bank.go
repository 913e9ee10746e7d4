package ledger

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// BankParser parses checking account statement exports. Columns are found by
// header name so both the minimal layout
//
//	Posting Date,Amount,Balance,Check or Slip #
//
// and the full export (Details,Posting Date,Description,Amount,Type,Balance,...)
// are accepted. Statement order is preserved.
type BankParser struct{}

var bankColumnAliases = map[string][]string{
	"posting_date": {"posting_date", "post_date", "date"},
	"amount":       {"amount"},
	"balance":      {"balance"},
}

// Format returns the parser name.
func (p *BankParser) Format() string { return "bank" }

// Parse reads a bank CSV and returns its entries in statement order.
func (p *BankParser) Parse(r io.Reader) ([]model.BankEntry, error) {
	cr := csv.NewReader(r)
	// Some exports carry a trailing comma on data rows only.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading bank CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	cols, err := bankColumns(records[0])
	if err != nil {
		return nil, err
	}
	if len(records) == 1 {
		return nil, nil
	}
	width := max(cols["posting_date"], cols["amount"], cols["balance"]) + 1

	entries := make([]model.BankEntry, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := i + 2
		if len(rec) < width {
			return nil, &SchemaError{Row: row, Reason: fmt.Sprintf("expected at least %d fields, got %d", width, len(rec))}
		}
		entry, err := parseBankRow(rec, cols, row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func bankColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	cols := make(map[string]int, len(bankColumnAliases))
	for _, name := range []string{"posting_date", "amount", "balance"} {
		found := false
		for _, alias := range bankColumnAliases[name] {
			if i, ok := index[alias]; ok {
				cols[name] = i
				found = true
				break
			}
		}
		if !found {
			return nil, &SchemaError{Row: 1, Column: name, Reason: "required column missing"}
		}
	}
	return cols, nil
}

func parseBankRow(rec []string, cols map[string]int, row int) (model.BankEntry, error) {
	raw := rec[cols["posting_date"]]
	date, err := ParseDate(raw)
	if err != nil {
		return model.BankEntry{}, &ParseError{Row: row, Column: "posting_date", Value: raw, Err: err}
	}

	raw = rec[cols["amount"]]
	amount, err := ParseAmount(raw)
	if err != nil {
		return model.BankEntry{}, &ParseError{Row: row, Column: "amount", Value: raw, Err: err}
	}

	raw = rec[cols["balance"]]
	balance, err := ParseAmount(raw)
	if err != nil {
		return model.BankEntry{}, &ParseError{Row: row, Column: "balance", Value: raw, Err: err}
	}

	return model.BankEntry{PostingDate: date, Amount: amount, Balance: balance}, nil
}
