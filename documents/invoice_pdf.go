package documents

import (
	"bytes"
	"fmt"
	"os"

	"brando-backend/models"

	"github.com/jung-kurt/gofpdf"
)

// InvoiceMeta is the header block of a rendered bill.
type InvoiceMeta struct {
	InvoiceNo       string
	Date            string
	CustomerName    string
	CustomerAddress string
	PhonePrimary    string
	PhoneSecondary  string
}

// RenderInvoicePDF lays out a single bill: optional logo, company title,
// metadata block, the line item table and its grand total. Prices are
// parsed leniently, so a bad form value becomes a zero line, not an error.
func RenderInvoicePDF(companyName string, meta InvoiceMeta, items []models.LineItem, logoPath, currency string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 10, 12)
	pdf.AddPage()

	if logoPath != "" {
		if _, err := os.Stat(logoPath); err == nil {
			pdf.ImageOptions(logoPath, 12, 10, 40, 0, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
			pdf.Ln(18)
		}
	}

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Official Bill / Tax Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	metaRows := [][2]string{
		{"Invoice #", meta.InvoiceNo},
		{"Date/Time", meta.Date},
		{"Customer", orDash(meta.CustomerName)},
		{"Phone (Primary)", orDash(meta.PhonePrimary)},
		{"Phone (Optional)", orDash(meta.PhoneSecondary)},
		{"Address", orDash(meta.CustomerAddress)},
	}
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range metaRows {
		pdf.CellFormat(32, 6, row[0], "", 0, "L", false, 0, "")
		pdf.MultiCell(0, 6, row[1], "", "L", false)
	}
	pdf.Ln(4)

	// Item table header
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(11, 61, 145)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(18, 8, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(120, 8, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(48, 8, fmt.Sprintf("Price (%s)", currency), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	total := ItemsTotal(items)
	for idx, it := range items {
		price := ParsePrice(it.Price)
		pdf.CellFormat(18, 7, fmt.Sprintf("%d", idx+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(120, 7, it.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(48, 7, FormatMoney(price), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(138, 8, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(48, 8, FormatMoney(total), "T", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 5, "Thank you for your business.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
