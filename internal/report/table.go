// Package report projects query results into the shapes the presentation layer
// renders: table rows with user-facing labels, CSV, and chart descriptors.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Columns is the table header, in display order.
var Columns = []string{"Transaction Date", "Description", "Category", "Type", "Amount ($)"}

const (
	dateFormat = "2006-01-02"
	numColumns = 5
	colDate    = 0
	colDesc    = 1
	colCat     = 2
	colType    = 3
	colAmount  = 4
)

// Row is one transaction as shown in the table view.
type Row struct {
	TransactionDate string `json:"Transaction Date"`
	Description     string `json:"Description"`
	Category        string `json:"Category"`
	Type            string `json:"Type"`
	Amount          string `json:"Amount ($)"`
}

// Table projects set into display rows, preserving order.
func Table(set model.TransactionSet) []Row {
	rows := make([]Row, len(set))
	for i, t := range set {
		rows[i] = Row{
			TransactionDate: t.Date.Format(dateFormat),
			Description:     t.Description,
			Category:        t.Category,
			Type:            t.Type,
			Amount:          t.Amount.StringFixed(2),
		}
	}
	return rows
}

// MarshalRow converts a Row to a CSV record in Columns order.
func MarshalRow(r Row) []string {
	rec := make([]string, numColumns)
	rec[colDate] = r.TransactionDate
	rec[colDesc] = r.Description
	rec[colCat] = r.Category
	rec[colType] = r.Type
	rec[colAmount] = r.Amount
	return rec
}

// WriteCSV writes set as CSV with the Columns header.
func WriteCSV(w io.Writer, set model.TransactionSet) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range Table(set) {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteText writes set as an aligned plain-text table followed by a total line.
func WriteText(w io.Writer, set model.TransactionSet) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", Columns[colDate], Columns[colDesc], Columns[colCat], Columns[colType], Columns[colAmount])
	for _, t := range set {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			t.Date.Format(dateFormat), t.Description, t.Category, t.Type, FormatAmount(t.Amount))
	}
	fmt.Fprintf(tw, "\t\t\t%d transactions\t%s\t\n", len(set), FormatAmount(set.Total()))
	return tw.Flush()
}
