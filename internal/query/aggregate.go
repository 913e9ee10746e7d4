package query

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// MonthEnd returns the anchor date used to bucket t's month: day 31 or 30 for
// long and short months, and day 28 for February in every year, leap years
// included. Downstream charts key on these exact anchors.
func MonthEnd(t time.Time) time.Time {
	switch t.Month() {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return model.Date(t.Year(), t.Month(), 31)
	case time.April, time.June, time.September, time.November:
		return model.Date(t.Year(), t.Month(), 30)
	default:
		return model.Date(t.Year(), t.Month(), 28)
	}
}

// CategoryTotals sums amounts per category in first-seen order. Categories
// without transactions in set do not appear.
func CategoryTotals(set model.TransactionSet) []model.CategoryTotal {
	index := make(map[string]int)
	var totals []model.CategoryTotal
	for _, t := range set {
		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, model.CategoryTotal{Category: t.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(t.Amount)
	}
	return totals
}

// GrandTotal sums category totals.
func GrandTotal(totals []model.CategoryTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, ct := range totals {
		sum = sum.Add(ct.Amount)
	}
	return sum
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthlyTotals sums amounts per calendar month, one point per month present,
// ascending by anchor (see MonthEnd).
func MonthlyTotals(set model.TransactionSet) []model.MonthlyTotal {
	index := make(map[monthKey]int)
	var totals []model.MonthlyTotal
	for _, t := range set {
		k := monthKey{t.Date.Year(), t.Date.Month()}
		i, ok := index[k]
		if !ok {
			i = len(totals)
			index[k] = i
			totals = append(totals, model.MonthlyTotal{Anchor: MonthEnd(t.Date), Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(t.Amount)
	}
	slices.SortFunc(totals, func(a, b model.MonthlyTotal) int {
		return a.Anchor.Compare(b.Anchor)
	})
	return totals
}

// Points returns one (date, amount) sample per transaction, in set order.
func Points(set model.TransactionSet) []model.Point {
	points := make([]model.Point, len(set))
	for i, t := range set {
		points[i] = model.Point{Date: t.Date, Amount: t.Amount}
	}
	return points
}
