package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/logger"
	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/query"
	"github.com/ledgerlens/ledgerlens/internal/report"
)

// TransactionsResponse is the body of GET /api/transactions.
type TransactionsResponse struct {
	Transactions []report.Row    `json:"transactions"`
	Count        int             `json:"count"`
	Total        decimal.Decimal `json:"total"`
}

// OptionsResponse lists the values the filter dropdowns offer.
type OptionsResponse struct {
	Years      []int    `json:"years"`
	Months     []string `json:"months"`
	Categories []string `json:"categories"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseSpec reads the filter from the query string. On failure it has
// already written a 400 response.
func parseSpec(w http.ResponseWriter, r *http.Request) (query.Spec, bool) {
	return parseParams(w, r, query.ParamsFromValues(r.URL.Query()))
}

func parseParams(w http.ResponseWriter, r *http.Request, p query.Params) (query.Spec, bool) {
	spec, err := query.ParseSpec(p)
	if err != nil {
		var invalid *query.InvalidSpecError
		if errors.As(err, &invalid) {
			WriteError(w, http.StatusBadRequest, invalid.Error())
			return query.Spec{}, false
		}
		log := logger.FromContext(r.Context())
		log.Error().Err(err).Msg("parsing filter")
		WriteError(w, http.StatusInternalServerError, "internal server error")
		return query.Spec{}, false
	}
	return spec, true
}

func chartKind(w http.ResponseWriter, r *http.Request) (string, bool) {
	kind := strings.ToLower(r.URL.Query().Get("kind"))
	switch kind {
	case "":
		return report.KindLine, true
	case report.KindLine, report.KindBar:
		return kind, true
	default:
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("invalid kind %q: want line or bar", kind))
		return "", false
	}
}

func (s *Server) filtered(spec query.Spec) model.TransactionSet {
	return query.Filter(s.data.Store.All(), spec)
}

// GET /api/transactions
func (s *Server) transactions(w http.ResponseWriter, r *http.Request) {
	spec, ok := parseSpec(w, r)
	if !ok {
		return
	}
	set := s.filtered(spec)
	WriteJSON(w, http.StatusOK, TransactionsResponse{
		Transactions: report.Table(set),
		Count:        len(set),
		Total:        set.Total(),
	})
}

// GET /api/charts/categories
// Only year and month apply to the category breakdown; other filters are
// not read.
func (s *Server) categoryChart(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	spec, ok := parseParams(w, r, query.Params{Year: v.Get("year"), Month: v.Get("month")})
	if !ok {
		return
	}
	totals := query.CategoryTotals(s.filtered(spec))
	WriteJSON(w, http.StatusOK, report.CategoryChart(totals, spec.Year, spec.MonthName))
}

// GET /api/charts/spending
func (s *Server) spendingChart(w http.ResponseWriter, r *http.Request) {
	spec, ok := parseSpec(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, report.SpendingChart(query.Points(s.filtered(spec))))
}

// GET /api/charts/monthly
// The month filter is ignored; the chart spans months.
func (s *Server) monthlyChart(w http.ResponseWriter, r *http.Request) {
	spec, ok := parseSpec(w, r)
	if !ok {
		return
	}
	spec.MonthName = nil
	WriteJSON(w, http.StatusOK, report.MonthlyChart(query.MonthlyTotals(s.filtered(spec))))
}

// GET /api/options
func (s *Server) options(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, OptionsResponse{
		Years:      s.data.Store.Years(),
		Months:     model.MonthNames,
		Categories: s.data.Store.Categories(),
	})
}

// GET /api/bank/net
func (s *Server) bankNet(w http.ResponseWriter, r *http.Request) {
	kind, ok := chartKind(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, report.NetIncomeChart(kind, s.data.Bank.Net))
}

// GET /api/bank/balance
func (s *Server) bankBalance(w http.ResponseWriter, r *http.Request) {
	kind, ok := chartKind(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, report.BalanceChart(kind, s.data.Bank.Balance))
}
