package ledger

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Parser converts one raw ledger export into records of type T.
type Parser[T any] interface {
	Parse(r io.Reader) ([]T, error)
	Format() string
}

// Registry holds named parsers for one record type.
type Registry[T any] struct {
	parsers map[string]Parser[T]
}

// NewRegistry creates an empty parser registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{parsers: make(map[string]Parser[T])}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry[T]) Register(p Parser[T]) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry[T]) Get(format string) Parser[T] {
	return r.parsers[strings.ToLower(format)]
}

// CardRegistry returns a registry with the built-in card ledger parsers.
func CardRegistry() *Registry[model.Transaction] {
	r := NewRegistry[model.Transaction]()
	r.Register(&CardParser{})
	return r
}

// BankRegistry returns a registry with the built-in bank statement parsers.
func BankRegistry() *Registry[model.BankEntry] {
	r := NewRegistry[model.BankEntry]()
	r.Register(&BankParser{})
	return r
}

// dateLayouts are tried in order. Exports seen in the wild use US month-first
// dates; ISO dates come from hand-edited files.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
	"01/02/06",
	"1/2/06",
}

var errUnknownDate = errors.New("unrecognized date format")

// ParseDate parses a ledger date cell into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.DateOnly(t), nil
		}
	}
	return time.Time{}, errUnknownDate
}

// ParseAmount parses a currency cell. A leading "$" and thousands separators
// are accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.Replace(s, "$", "", 1)
	if s == "" {
		return decimal.Decimal{}, errors.New("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal: %w", err)
	}
	return d, nil
}

// normalizeHeader folds "Posting Date" and "posting_date" to the same key.
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '#' {
			return '_'
		}
		return r
	}, h)
}
