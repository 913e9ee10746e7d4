// Package bank reduces bank statement entries into monthly series.
package bank

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// netAnchorDay is the day used to anchor monthly net income points.
const netAnchorDay = 28

// Series holds both bank reductions.
type Series struct {
	Net     []model.MonthlyNet
	Balance []model.MonthlyBalance
}

// Reconcile computes the monthly net and month-end balance series in
// parallel. entries is only read.
func Reconcile(ctx context.Context, entries []model.BankEntry) (Series, error) {
	var s Series
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Net = MonthlyNet(entries)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Balance = MonthlyBalance(entries)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Series{}, err
	}
	return s, nil
}

type monthKey struct {
	year  int
	month time.Month
}

func keyOf(t time.Time) monthKey {
	return monthKey{t.Year(), t.Month()}
}

// MonthlyNet sums signed amounts per calendar month. Deposits and withdrawals
// net together. Points are anchored on day 28 and ascend by anchor.
func MonthlyNet(entries []model.BankEntry) []model.MonthlyNet {
	index := make(map[monthKey]int)
	var out []model.MonthlyNet
	for _, e := range entries {
		k := keyOf(e.PostingDate)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, model.MonthlyNet{
				Anchor: model.Date(k.year, k.month, netAnchorDay),
				Amount: decimal.Zero,
			})
		}
		out[i].Amount = out[i].Amount.Add(e.Amount)
	}
	slices.SortFunc(out, func(a, b model.MonthlyNet) int {
		return a.Anchor.Compare(b.Anchor)
	})
	return out
}

// MonthlyBalance picks one representative balance per calendar month.
//
// Entries of a month are ranked by posting date, same-day entries ranked in
// statement order, and the highest rank wins. When several entries share the
// latest date, the one appearing last in the statement is chosen even if the
// issuer's true intra-day order differs.
func MonthlyBalance(entries []model.BankEntry) []model.MonthlyBalance {
	index := make(map[monthKey]int)
	var out []model.MonthlyBalance
	for _, e := range entries {
		k := keyOf(e.PostingDate)
		i, ok := index[k]
		if !ok {
			index[k] = len(out)
			out = append(out, model.MonthlyBalance{
				Anchor:      model.Date(k.year, k.month, 1),
				PostingDate: e.PostingDate,
				Balance:     e.Balance,
			})
			continue
		}
		// A later entry outranks the current pick unless it posted strictly earlier.
		if !e.PostingDate.Before(out[i].PostingDate) {
			out[i].PostingDate = e.PostingDate
			out[i].Balance = e.Balance
		}
	}
	slices.SortFunc(out, func(a, b model.MonthlyBalance) int {
		return a.Anchor.Compare(b.Anchor)
	})
	return out
}
