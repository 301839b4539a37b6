package services

import (
	"time"

	"supplydesk/backend"
	"supplydesk/config"
)

// QuoteExportRow is one printable line of a quotation document.
type QuoteExportRow struct {
	SINo      int
	Product   string
	Unit      string
	Qty       float64
	UnitPrice float64
	Total     float64
}

// QuoteExportData is everything the PDF/Excel/CSV generators need to render
// one quotation, letterhead included.
type QuoteExportData struct {
	CompanyName    string
	CompanyAddress string
	CompanyCity    string
	CompanyPhone   string
	CompanyEmail   string

	QuoteID    string
	Title      string
	QuoteDate  string
	ValidUntil string

	SupplierID   string
	SupplierName string
	Currency     string

	Rows       []QuoteExportRow
	GrandTotal float64
}

const exportDateLayout = "02 Jan 2006"

// BuildQuoteExportData assembles export data from a stored quotation fetched
// from the backend.
func BuildQuoteExportData(cfg config.Config, q backend.Quotation, now time.Time) QuoteExportData {
	data := newQuoteExportData(cfg, now)
	data.QuoteID = q.ID
	data.Title = q.Title
	data.SupplierID = q.Supplier
	data.SupplierName = q.SupplierName
	data.Currency = q.Currency
	if data.Currency == "" {
		data.Currency = DefaultCurrency
	}
	data.QuoteDate = formatBackendDate(q.CreatedAt, now)

	for i, item := range q.Items {
		qty, _ := item.Quantity.Float64()
		if qty == 0 {
			qty = 1
		}
		unitPrice := ParsePrice(item.UnitPrice)
		total := ParsePrice(item.TotalPrice)
		if total == 0 {
			total = unitPrice * qty
		}
		data.Rows = append(data.Rows, QuoteExportRow{
			SINo:      i + 1,
			Product:   item.ProductName,
			Unit:      item.Unit,
			Qty:       qty,
			UnitPrice: unitPrice,
			Total:     total,
		})
		data.GrandTotal += total
	}
	return data
}

// BuildQuoteExportFromDocument assembles export data from the reconstructed
// view the quote builder hands to the renderer right after a submit.
func BuildQuoteExportFromDocument(cfg config.Config, doc QuoteDocument, now time.Time) QuoteExportData {
	data := newQuoteExportData(cfg, now)
	data.QuoteID = doc.ID
	data.Title = doc.Title
	data.SupplierID = doc.SupplierID
	data.SupplierName = doc.SupplierName
	data.Currency = doc.Currency
	if data.Currency == "" {
		data.Currency = DefaultCurrency
	}
	data.QuoteDate = formatBackendDate(doc.CreatedAt, now)

	for i, item := range doc.Items {
		data.Rows = append(data.Rows, QuoteExportRow{
			SINo:      i + 1,
			Product:   item.ProductName,
			Unit:      item.Unit,
			Qty:       1,
			UnitPrice: item.Price,
			Total:     item.Price,
		})
		data.GrandTotal += item.Price
	}
	return data
}

func newQuoteExportData(cfg config.Config, now time.Time) QuoteExportData {
	return QuoteExportData{
		CompanyName:    cfg.CompanyName,
		CompanyAddress: cfg.CompanyAddress,
		CompanyCity:    cfg.CompanyCity,
		CompanyPhone:   cfg.CompanyPhone,
		CompanyEmail:   cfg.CompanyEmail,
		QuoteDate:      now.Format(exportDateLayout),
		ValidUntil:     now.AddDate(0, 0, cfg.QuoteValidityDays).Format(exportDateLayout),
	}
}

// formatBackendDate parses the backend's created_at timestamp, falling back
// to now when the value is absent or unparseable.
func formatBackendDate(raw string, now time.Time) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(exportDateLayout)
		}
	}
	return now.Format(exportDateLayout)
}
