package documents

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"brando-backend/models"

	"github.com/xuri/excelize/v2"
)

func sampleRows() []models.Invoice {
	r1 := inv("1000", "2024-03-01 09:00:00", "100")
	r1.CustomerName = "Ali"
	r1.PhonePrimary = "03012345678"
	r1.CustomerAddress = "Street 1, Lahore"
	r2 := inv("1001", "2024-03-02 10:00:00", "50.5")
	r2.CustomerName = "Bilal"
	r2.PhonePrimary = "03087654321"
	r2.CustomerAddress = "Street 2, Karachi"
	return []models.Invoice{r1, r2}
}

func TestHistoryCSV(t *testing.T) {
	data, err := HistoryCSV(sampleRows())
	if err != nil {
		t.Fatalf("HistoryCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0][0] != "Invoice #" || records[0][5] != "Total (PKR)" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "1000" || records[1][5] != "100.00" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	if records[2][5] != "50.50" {
		t.Errorf("total not formatted to two decimals: %v", records[2])
	}
}

func TestHistoryXLSX(t *testing.T) {
	data, err := HistoryXLSX(sampleRows())
	if err != nil {
		t.Fatalf("HistoryXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	if name := f.GetSheetName(0); name != "History" {
		t.Errorf("sheet name = %q, want History", name)
	}
	got, _ := f.GetCellValue("History", "A2")
	if got != "1000" {
		t.Errorf("A2 = %q, want 1000", got)
	}
	got, _ = f.GetCellValue("History", "B3")
	if got != "Bilal" {
		t.Errorf("B3 = %q, want Bilal", got)
	}
}

func TestRenderInvoicePDF(t *testing.T) {
	meta := InvoiceMeta{
		InvoiceNo:    "1000",
		Date:         "2024-03-01 09:00:00",
		CustomerName: "Ali",
		PhonePrimary: "03012345678",
	}
	items := []models.LineItem{
		{Name: "Widget", Price: "10.5"},
		{Name: "Broken", Price: "abc"},
	}

	data, err := RenderInvoicePDF("BRANDO", meta, items, "", "PKR")
	if err != nil {
		t.Fatalf("RenderInvoicePDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestRenderLoadSheet(t *testing.T) {
	files, err := RenderLoadSheet("BRANDO", "ali", sampleRows())
	if err != nil {
		t.Fatalf("RenderLoadSheet: %v", err)
	}

	if !bytes.HasPrefix(files.PDF, []byte("%PDF")) {
		t.Errorf("PDF output does not start with a PDF header")
	}
	if len(files.XLSX) == 0 {
		t.Errorf("XLSX output is empty")
	}

	text := string(files.CSV)
	for _, want := range []string{"Invoice #", "1000", "Grand Total", "150.50", "Daily Totals", "2024-03-01", "2024-03-02"} {
		if !strings.Contains(text, want) {
			t.Errorf("CSV output missing %q", want)
		}
	}

	// daily totals come out ascending by date
	if strings.Index(text, "2024-03-01") > strings.Index(text, "2024-03-02") {
		t.Errorf("daily totals not sorted ascending")
	}
}
