// Package documents renders invoices, history exports and load sheets into
// PDF, CSV and XLSX byte streams. Everything here is a pure function of the
// rows it is given; nothing reads or writes application state.
package documents

import (
	"sort"
	"strings"

	"brando-backend/models"

	"github.com/shopspring/decimal"
)

// DayTotal is one per-calendar-day subtotal of a load sheet.
type DayTotal struct {
	Date  string
	Total decimal.Decimal
}

// Summary carries the aggregation shared by all three load sheet formats.
type Summary struct {
	GrandTotal decimal.Decimal
	Days       []DayTotal
}

// Summarize computes the grand total and per-day subtotals of a row set.
// The day key is the date portion of CreatedAt (its first ten characters),
// and days come back sorted ascending by that string.
func Summarize(rows []models.Invoice) Summary {
	perDay := map[string]decimal.Decimal{}
	grand := decimal.Zero
	for _, r := range rows {
		grand = grand.Add(r.Total)
		day := r.CreatedAt
		if len(day) > 10 {
			day = day[:10]
		}
		perDay[day] = perDay[day].Add(r.Total)
	}

	days := make([]DayTotal, 0, len(perDay))
	for d, t := range perDay {
		days = append(days, DayTotal{Date: d, Total: t})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return Summary{GrandTotal: grand, Days: days}
}

// ParsePrice parses a raw form price leniently: anything that is not a
// number counts as zero rather than failing the whole document.
func ParsePrice(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ItemsTotal sums line item prices under lenient parsing.
func ItemsTotal(items []models.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(ParsePrice(it.Price))
	}
	return total
}

// FormatMoney renders a value with two decimals and thousands separators
// for human-facing output. Tabular exports use StringFixed(2) directly.
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s[:len(s)-3], s[len(s)-3:]
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
