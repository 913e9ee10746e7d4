package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a canonical card debit. Amount is always positive.
//
// Year, Month and MonthName are derived from Date by NewTransaction and are
// never set on their own.
type Transaction struct {
	Date        time.Time
	Description string
	Category    string
	Type        string
	Amount      decimal.Decimal
	Year        int
	Month       int
	MonthName   string
}

// NewTransaction builds a Transaction, deriving the calendar fields from date.
func NewTransaction(date time.Time, description, category, txnType string, amount decimal.Decimal) Transaction {
	d := DateOnly(date)
	return Transaction{
		Date:        d,
		Description: description,
		Category:    category,
		Type:        txnType,
		Amount:      amount,
		Year:        d.Year(),
		Month:       int(d.Month()),
		MonthName:   d.Month().String(),
	}
}

// TransactionSet is an ordered, read-only sequence of transactions.
// Ascending by Date; ties keep their input order.
type TransactionSet []Transaction

// Clone returns a copy that does not share the backing array.
func (s TransactionSet) Clone() TransactionSet {
	if s == nil {
		return nil
	}
	out := make(TransactionSet, len(s))
	copy(out, s)
	return out
}

// Total sums the amounts of every transaction in the set.
func (s TransactionSet) Total() decimal.Decimal {
	total := decimal.Zero
	for _, t := range s {
		total = total.Add(t.Amount)
	}
	return total
}

// CategoryTotal is the summed spend of one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// MonthlyTotal is the summed spend of one calendar month, keyed by its anchor date.
type MonthlyTotal struct {
	Anchor time.Time
	Amount decimal.Decimal
}

// Point is one (date, amount) sample of a spending series.
type Point struct {
	Date   time.Time
	Amount decimal.Decimal
}
