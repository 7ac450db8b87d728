package documents

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"brando-backend/models"
	"brando-backend/utils"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

var loadSheetHeader = []string{"Invoice #", "Customer", "Phone", "Address", "Total (PKR)"}

// LoadSheetFiles bundles the three parallel renderings of one batch.
type LoadSheetFiles struct {
	PDF  []byte
	CSV  []byte
	XLSX []byte
}

// RenderLoadSheet produces PDF, CSV and XLSX streams carrying logically
// identical data: per row columns, a grand total and ascending per-day
// subtotals. Only layout differs between formats.
func RenderLoadSheet(companyName, username string, rows []models.Invoice) (LoadSheetFiles, error) {
	summary := Summarize(rows)

	csvBytes, err := loadSheetCSV(rows, summary)
	if err != nil {
		return LoadSheetFiles{}, err
	}
	xlsxBytes, err := loadSheetXLSX(rows, summary)
	if err != nil {
		return LoadSheetFiles{}, err
	}
	pdfBytes, err := loadSheetPDF(companyName, username, rows, summary)
	if err != nil {
		return LoadSheetFiles{}, err
	}

	return LoadSheetFiles{PDF: pdfBytes, CSV: csvBytes, XLSX: xlsxBytes}, nil
}

func loadSheetCSV(rows []models.Invoice, summary Summary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(loadSheetHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.InvoiceNo, r.CustomerName, r.PhonePrimary,
			r.CustomerAddress, r.Total.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Write([]string{})
	w.Write([]string{"Grand Total", summary.GrandTotal.StringFixed(2)})
	w.Write([]string{})
	w.Write([]string{"Daily Totals"})
	for _, d := range summary.Days {
		w.Write([]string{d.Date, d.Total.StringFixed(2)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func loadSheetXLSX(rows []models.Invoice, summary Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "LoadSheet"
	f.SetSheetName(f.GetSheetName(0), sheet)

	header := make([]interface{}, len(loadSheetHeader))
	for i, h := range loadSheetHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	rowIdx := 2
	writeRow := func(values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		rowIdx++
		return f.SetSheetRow(sheet, cell, &values)
	}

	for _, r := range rows {
		err := writeRow([]interface{}{
			r.InvoiceNo, r.CustomerName, r.PhonePrimary,
			r.CustomerAddress, r.Total.InexactFloat64(),
		})
		if err != nil {
			return nil, err
		}
	}
	writeRow([]interface{}{})
	writeRow([]interface{}{"", "", "", "Grand Total", summary.GrandTotal.InexactFloat64()})
	writeRow([]interface{}{})
	writeRow([]interface{}{"Daily Totals"})
	for _, d := range summary.Days {
		if err := writeRow([]interface{}{d.Date, d.Total.InexactFloat64()}); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func loadSheetPDF(companyName, username string, rows []models.Invoice, summary Summary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, fmt.Sprintf("Load Sheet — %s", username), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Generated on: "+utils.HumanNow(), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	widths := []float64{24, 45, 28, 65, 28}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(0, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range loadSheetHeader {
		align := "L"
		if i == len(loadSheetHeader)-1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, r := range rows {
		cells := []string{r.InvoiceNo, r.CustomerName, r.PhonePrimary, r.CustomerAddress}
		for i, v := range cells {
			pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.CellFormat(widths[4], 6, FormatMoney(r.Total), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 7, "Grand Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 7, FormatMoney(summary.GrandTotal), "T", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Daily Totals", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, d := range summary.Days {
		pdf.CellFormat(0, 5, fmt.Sprintf("%s: %s PKR", d.Date, FormatMoney(d.Total)), "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("%s — Load Sheet generated by %s Billing", companyName, companyName), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
