// Package store holds the merged, read-only transaction history.
package store

import (
	"slices"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Store is the immutable, date-ordered merge of every normalized card ledger.
// All accessors return copies; a Store is safe for concurrent readers.
type Store struct {
	txns       model.TransactionSet
	years      []int
	categories []string
}

// New concatenates sources in the given order and stable-sorts the result by
// transaction date, so same-day transactions keep source order.
func New(sources ...[]model.Transaction) *Store {
	n := 0
	for _, src := range sources {
		n += len(src)
	}

	txns := make(model.TransactionSet, 0, n)
	for _, src := range sources {
		txns = append(txns, src...)
	}
	slices.SortStableFunc(txns, func(a, b model.Transaction) int {
		return a.Date.Compare(b.Date)
	})

	return &Store{
		txns:       txns,
		years:      distinctYears(txns),
		categories: distinctCategories(txns),
	}
}

// All returns the full ordered transaction set.
func (s *Store) All() model.TransactionSet {
	return s.txns.Clone()
}

// Len returns the number of transactions.
func (s *Store) Len() int {
	return len(s.txns)
}

// Years returns the distinct transaction years, ascending.
func (s *Store) Years() []int {
	return slices.Clone(s.years)
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []string {
	return slices.Clone(s.categories)
}

func distinctYears(txns model.TransactionSet) []int {
	seen := make(map[int]bool)
	var years []int
	for _, t := range txns {
		if !seen[t.Year] {
			seen[t.Year] = true
			years = append(years, t.Year)
		}
	}
	slices.Sort(years)
	return years
}

func distinctCategories(txns model.TransactionSet) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, t := range txns {
		if !seen[t.Category] {
			seen[t.Category] = true
			cats = append(cats, t.Category)
		}
	}
	return cats
}
