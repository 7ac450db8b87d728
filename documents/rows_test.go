package documents

import (
	"testing"

	"brando-backend/models"

	"github.com/shopspring/decimal"
)

func inv(no, createdAt, total string) models.Invoice {
	return models.Invoice{
		InvoiceNo: no,
		Total:     decimal.RequireFromString(total),
		CreatedAt: createdAt,
	}
}

func TestSummarize(t *testing.T) {
	rows := []models.Invoice{
		inv("1000", "2024-03-01 09:00:00", "100"),
		inv("1001", "2024-03-01 17:30:00", "50"),
		inv("1002", "2024-03-02 08:00:00", "20"),
	}

	s := Summarize(rows)

	if want := decimal.RequireFromString("170"); !s.GrandTotal.Equal(want) {
		t.Errorf("GrandTotal = %s, want %s", s.GrandTotal, want)
	}
	if len(s.Days) != 2 {
		t.Fatalf("got %d day buckets, want 2", len(s.Days))
	}
	if s.Days[0].Date != "2024-03-01" || !s.Days[0].Total.Equal(decimal.RequireFromString("150")) {
		t.Errorf("day[0] = %s %s, want 2024-03-01 150", s.Days[0].Date, s.Days[0].Total)
	}
	if s.Days[1].Date != "2024-03-02" || !s.Days[1].Total.Equal(decimal.RequireFromString("20")) {
		t.Errorf("day[1] = %s %s, want 2024-03-02 20", s.Days[1].Date, s.Days[1].Total)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if !s.GrandTotal.IsZero() {
		t.Errorf("GrandTotal = %s, want 0", s.GrandTotal)
	}
	if len(s.Days) != 0 {
		t.Errorf("got %d day buckets, want 0", len(s.Days))
	}
}

func TestItemsTotalLenientParsing(t *testing.T) {
	items := []models.LineItem{
		{Name: "a", Price: "10.5"},
		{Name: "b", Price: "abc"},
		{Name: "c", Price: "4.5"},
	}
	total := ItemsTotal(items)
	if got := total.StringFixed(2); got != "15.00" {
		t.Errorf("ItemsTotal = %s, want 15.00", got)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.5", "10.50"},
		{" 42 ", "42.00"},
		{"", "0.00"},
		{"abc", "0.00"},
		{"-3.25", "-3.25"},
	}
	for _, tt := range tests {
		if got := ParsePrice(tt.in).StringFixed(2); got != tt.want {
			t.Errorf("ParsePrice(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"999.9", "999.90"},
		{"1000", "1,000.00"},
		{"1234567.5", "1,234,567.50"},
		{"-12345", "-12,345.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatMoney(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
