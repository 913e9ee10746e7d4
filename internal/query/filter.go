// Package query filters and aggregates transaction sets. Every function is a
// pure function of its inputs and never mutates or aliases them.
package query

import (
	"time"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Spec selects transactions. Nil fields impose no constraint; the predicates
// of all present fields are ANDed.
type Spec struct {
	From      *time.Time // inclusive, compared by calendar date
	To        *time.Time // inclusive, compared by calendar date
	Category  *string
	Year      *int
	MonthName *string
}

// WithFrom returns a copy of s bounded below by from.
func (s Spec) WithFrom(from time.Time) Spec {
	d := model.DateOnly(from)
	s.From = &d
	return s
}

// WithTo returns a copy of s bounded above by to.
func (s Spec) WithTo(to time.Time) Spec {
	d := model.DateOnly(to)
	s.To = &d
	return s
}

// WithRange returns a copy of s bounded to [from, to].
func (s Spec) WithRange(from, to time.Time) Spec {
	return s.WithFrom(from).WithTo(to)
}

// WithCategory returns a copy of s restricted to one category.
func (s Spec) WithCategory(category string) Spec {
	s.Category = &category
	return s
}

// WithYear returns a copy of s restricted to one transaction year.
func (s Spec) WithYear(year int) Spec {
	s.Year = &year
	return s
}

// WithMonth returns a copy of s restricted to one month name, e.g. "March".
func (s Spec) WithMonth(name string) Spec {
	s.MonthName = &name
	return s
}

// IsEmpty reports whether s has no constraints.
func (s Spec) IsEmpty() bool {
	return s.From == nil && s.To == nil && s.Category == nil && s.Year == nil && s.MonthName == nil
}

// Match reports whether t satisfies every present predicate of s.
func (s Spec) Match(t model.Transaction) bool {
	if s.From != nil && t.Date.Before(model.DateOnly(*s.From)) {
		return false
	}
	if s.To != nil && t.Date.After(model.DateOnly(*s.To)) {
		return false
	}
	if s.Category != nil && t.Category != *s.Category {
		return false
	}
	if s.Year != nil && t.Year != *s.Year {
		return false
	}
	if s.MonthName != nil && t.MonthName != *s.MonthName {
		return false
	}
	return true
}

// Filter returns the transactions of set matching spec, in set order.
// A From after To matches nothing.
func Filter(set model.TransactionSet, spec Spec) model.TransactionSet {
	out := make(model.TransactionSet, 0, len(set))
	for _, t := range set {
		if spec.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
