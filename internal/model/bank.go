package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankEntry is a parsed bank statement line.
type BankEntry struct {
	PostingDate time.Time
	Amount      decimal.Decimal // positive = deposit, negative = withdrawal
	Balance     decimal.Decimal // running balance as reported by the statement
}

// MonthlyNet is the net of all bank entries in one month. Anchor is day 28.
type MonthlyNet struct {
	Anchor time.Time
	Amount decimal.Decimal
}

// MonthlyBalance is the representative balance of one month. Anchor is day 1.
type MonthlyBalance struct {
	Anchor      time.Time
	PostingDate time.Time
	Balance     decimal.Decimal
}
