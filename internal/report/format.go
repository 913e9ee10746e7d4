package report

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// amountPrinter is shared; Printer methods are safe for concurrent use.
var amountPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders d with two decimals and US digit grouping, e.g.
// "1,234.50". Digits come from the decimal itself, so large values keep
// every digit.
func FormatAmount(d decimal.Decimal) string {
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")

	var grouped string
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		grouped = amountPrinter.Sprint(number.Decimal(n))
	} else {
		grouped = groupDigits(whole)
	}

	if d.Round(2).IsNegative() {
		return "-" + grouped + "." + frac
	}
	return grouped + "." + frac
}

// groupDigits inserts thousands separators into a run of ASCII digits.
func groupDigits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
