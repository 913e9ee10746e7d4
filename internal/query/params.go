package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ledgerlens/ledgerlens/internal/ledger"
	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Params is the raw, string-typed form of a Spec as it arrives from a query
// string or command-line flags. Empty fields are absent.
type Params struct {
	From     string
	To       string
	Category string
	Year     string
	Month    string
}

// ParamsFromValues reads from, to, category, year and month.
func ParamsFromValues(v url.Values) Params {
	return Params{
		From:     v.Get("from"),
		To:       v.Get("to"),
		Category: v.Get("category"),
		Year:     v.Get("year"),
		Month:    v.Get("month"),
	}
}

// InvalidSpecError reports a filter input that cannot be turned into a Spec.
type InvalidSpecError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InvalidSpecError) Unwrap() error { return e.Err }

// ParseSpec converts p into a Spec. Month accepts a name in any case or a
// month number; names that are not months are kept and simply match nothing.
func ParseSpec(p Params) (Spec, error) {
	var spec Spec

	if v := strings.TrimSpace(p.From); v != "" {
		from, err := ledger.ParseDate(v)
		if err != nil {
			return Spec{}, &InvalidSpecError{Field: "from", Value: p.From, Err: err}
		}
		spec = spec.WithFrom(from)
	}

	if v := strings.TrimSpace(p.To); v != "" {
		to, err := ledger.ParseDate(v)
		if err != nil {
			return Spec{}, &InvalidSpecError{Field: "to", Value: p.To, Err: err}
		}
		spec = spec.WithTo(to)
	}

	if p.Category != "" {
		spec = spec.WithCategory(p.Category)
	}

	if v := strings.TrimSpace(p.Year); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return Spec{}, &InvalidSpecError{Field: "year", Value: p.Year, Err: err}
		}
		spec = spec.WithYear(year)
	}

	if v := strings.TrimSpace(p.Month); v != "" {
		spec = spec.WithMonth(normalizeMonth(v))
	}

	return spec, nil
}

func normalizeMonth(v string) string {
	if n, err := strconv.Atoi(v); err == nil {
		if name := model.MonthNameOf(n); name != "" {
			return name
		}
		return v
	}
	// Casers are stateful; one per call keeps ParseSpec safe for concurrent use.
	return cases.Title(language.English).String(v)
}
