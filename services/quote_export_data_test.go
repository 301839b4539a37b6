package services

import (
	"testing"
	"time"

	"supplydesk/backend"
	"supplydesk/config"
)

func testExportConfig() config.Config {
	return config.Config{
		CompanyName:       "SupplyDesk Trading LLC",
		CompanyAddress:    "12 Harbor Road",
		CompanyCity:       "Dubai, UAE",
		CompanyPhone:      "+971 4 000 0000",
		CompanyEmail:      "sales@supplydesk.example",
		DefaultCurrency:   "USD",
		QuoteValidityDays: 30,
	}
}

func TestBuildQuoteExportData(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	q := backend.Quotation{
		ID:           "q-9",
		Title:        "August order",
		Supplier:     "42",
		SupplierName: "Acme Traders",
		Currency:     "USD",
		TotalAmount:  "25.50",
		CreatedAt:    "2026-08-15T09:30:00Z",
		Items: []backend.QuotationItem{
			{ProductName: "Rice 5kg", Unit: "bag", Quantity: "2", UnitPrice: "10.00", TotalPrice: "20.00"},
			{ProductName: "Sugar 1kg", Unit: "pkt", Quantity: "", UnitPrice: "5.50", TotalPrice: ""},
		},
	}

	data := BuildQuoteExportData(testExportConfig(), q, now)

	if data.CompanyName != "SupplyDesk Trading LLC" {
		t.Errorf("expected letterhead company name, got %q", data.CompanyName)
	}
	if data.QuoteDate != "15 Aug 2026" {
		t.Errorf("expected quote date from created_at, got %q", data.QuoteDate)
	}
	if data.ValidUntil != "29 Sep 2026" {
		t.Errorf("expected validity 30 days from now, got %q", data.ValidUntil)
	}
	if len(data.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(data.Rows))
	}

	first := data.Rows[0]
	if first.SINo != 1 || first.Qty != 2 || first.Total != 20 {
		t.Errorf("unexpected first row: %+v", first)
	}
	// Missing quantity defaults to 1 and total falls back to qty*price.
	second := data.Rows[1]
	if second.Qty != 1 {
		t.Errorf("expected default qty 1, got %v", second.Qty)
	}
	if second.Total != 5.5 {
		t.Errorf("expected computed total 5.5, got %v", second.Total)
	}
	if data.GrandTotal != 25.5 {
		t.Errorf("expected grand total 25.5, got %v", data.GrandTotal)
	}
}

func TestBuildQuoteExportData_DefaultsCurrencyAndDate(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	q := backend.Quotation{ID: "q-1", CreatedAt: "not a date"}

	data := BuildQuoteExportData(testExportConfig(), q, now)
	if data.Currency != "USD" {
		t.Errorf("expected default currency, got %q", data.Currency)
	}
	if data.QuoteDate != "30 Aug 2026" {
		t.Errorf("expected fallback to now for unparseable date, got %q", data.QuoteDate)
	}
}

func TestBuildQuoteExportFromDocument(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	doc := QuoteDocument{
		ID:           "q-5",
		Title:        "Fresh quote",
		SupplierID:   "42",
		SupplierName: "Acme Traders",
		Currency:     "USD",
		TotalAmount:  "15.00",
		Items: []LineItem{
			{ProductName: "Rice 5kg", Unit: "bag", Price: 10},
			{ProductName: "Sugar 1kg", Unit: "pkt", Price: 5},
		},
	}

	data := BuildQuoteExportFromDocument(testExportConfig(), doc, now)
	if len(data.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(data.Rows))
	}
	for _, row := range data.Rows {
		if row.Qty != 1 {
			t.Errorf("expected qty 1 in builder documents, got %v", row.Qty)
		}
		if row.Total != row.UnitPrice {
			t.Errorf("expected row total to equal unit price, got %v vs %v", row.Total, row.UnitPrice)
		}
	}
	if data.GrandTotal != 15 {
		t.Errorf("expected grand total 15, got %v", data.GrandTotal)
	}
}
