package documents

import (
	"bytes"
	"encoding/csv"

	"brando-backend/models"

	"github.com/xuri/excelize/v2"
)

var historyHeader = []string{
	"Invoice #", "Customer", "Phone (Primary)", "Phone (Optional)",
	"Address", "Total (PKR)", "Created At",
}

// HistoryCSV flattens history rows into the fixed seven column table.
func HistoryCSV(rows []models.Invoice) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(historyHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.InvoiceNo, r.CustomerName, r.PhonePrimary, r.PhoneSecondary,
			r.CustomerAddress, r.Total.StringFixed(2), r.CreatedAt,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HistoryXLSX writes the same table as HistoryCSV into a workbook with a
// single "History" sheet; totals land as numeric cells.
func HistoryXLSX(rows []models.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "History"
	f.SetSheetName(f.GetSheetName(0), sheet)

	header := make([]interface{}, len(historyHeader))
	for i, h := range historyHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			r.InvoiceNo, r.CustomerName, r.PhonePrimary, r.PhoneSecondary,
			r.CustomerAddress, r.Total.InexactFloat64(), r.CreatedAt,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
