package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Chart kinds.
const (
	KindPie  = "pie"
	KindLine = "line"
	KindBar  = "bar"
)

// Axis labels shared by several charts.
const (
	axisDate    = "Date"
	axisAmount  = "Amount ($)"
	axisBalance = "Account Balance ($)"
	axisNet     = "Net Income ($)"
)

// Chart is a renderer-agnostic chart description. Labels and Values are
// parallel; for time series Labels are ISO dates. Empty charts keep their
// title and axes so the renderer can draw a placeholder.
type Chart struct {
	Kind   string            `json:"kind"`
	Title  string            `json:"title"`
	XLabel string            `json:"x_label,omitempty"`
	YLabel string            `json:"y_label,omitempty"`
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
	Empty  bool              `json:"empty"`
}

// CategoryTitle names the category breakdown for an optional year and month,
// e.g. "Spending by Category during: March 2023".
func CategoryTitle(year *int, month *string) string {
	title := "Spending by Category during:"
	if month != nil {
		title += " " + *month
	}
	if year != nil {
		title += " " + strconv.Itoa(*year)
	}
	return title
}

// CategoryChart is the pie breakdown of category totals.
func CategoryChart(totals []model.CategoryTotal, year *int, month *string) Chart {
	c := newChart(KindPie, CategoryTitle(year, month), "", "", len(totals))
	for _, ct := range totals {
		c.Labels = append(c.Labels, ct.Category)
		c.Values = append(c.Values, ct.Amount)
	}
	return c
}

// SpendingChart plots every transaction amount by date. An empty series is
// titled "Overall".
func SpendingChart(points []model.Point) Chart {
	if len(points) == 0 {
		return newChart(KindLine, "Overall", axisDate, axisAmount, 0)
	}
	c := newChart(KindLine, "Overall Spending", axisDate, axisAmount, len(points))
	for _, p := range points {
		c.appendPoint(p.Date, p.Amount)
	}
	return c
}

// MonthlyChart plots total spend per month anchor.
func MonthlyChart(totals []model.MonthlyTotal) Chart {
	c := newChart(KindLine, "Total Spending per Month", axisDate, axisAmount, len(totals))
	for _, mt := range totals {
		c.appendPoint(mt.Anchor, mt.Amount)
	}
	return c
}

// NetIncomeChart plots monthly net account income.
func NetIncomeChart(kind string, net []model.MonthlyNet) Chart {
	c := newChart(kind, "Net Account Income (+/-) by Month", axisDate, axisNet, len(net))
	for _, n := range net {
		c.appendPoint(n.Anchor, n.Amount)
	}
	return c
}

// BalanceChart plots the month-end balance at its actual posting date.
func BalanceChart(kind string, balances []model.MonthlyBalance) Chart {
	c := newChart(kind, "Latest Account Balance per Month", axisDate, axisBalance, len(balances))
	for _, b := range balances {
		c.appendPoint(b.PostingDate, b.Balance)
	}
	return c
}

func newChart(kind, title, x, y string, n int) Chart {
	return Chart{
		Kind:   kind,
		Title:  title,
		XLabel: x,
		YLabel: y,
		Labels: make([]string, 0, n),
		Values: make([]decimal.Decimal, 0, n),
		Empty:  n == 0,
	}
}

func (c *Chart) appendPoint(t time.Time, v decimal.Decimal) {
	c.Labels = append(c.Labels, t.Format(dateFormat))
	c.Values = append(c.Values, v)
}

// String renders the chart as a short text listing for terminals.
func (c Chart) String() string {
	var b strings.Builder
	b.WriteString(c.Title + "\n")
	if c.Empty {
		b.WriteString("  (no data)\n")
		return b.String()
	}
	for i, l := range c.Labels {
		fmt.Fprintf(&b, "  %-24s %14s\n", l, FormatAmount(c.Values[i]))
	}
	return b.String()
}
