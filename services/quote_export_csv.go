package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// GenerateQuotationCSV creates a CSV rendition of a quotation: a header
// row, one row per line item, and a grand total row.
func GenerateQuotationCSV(data QuoteExportData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Product", "Supplier", "Quantity", "Unit Price", "Total Price"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range data.Rows {
		record := []string{
			r.Product,
			data.SupplierName,
			FormatAmount(r.Qty),
			FormatAmount(r.UnitPrice),
			FormatAmount(r.Total),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	total := []string{"", "", "", "Grand Total", FormatMoney(data.Currency, data.GrandTotal)}
	if err := w.Write(total); err != nil {
		return nil, fmt.Errorf("write csv total: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
