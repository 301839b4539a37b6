package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotationPDF creates the QUOTATION document for a quotation using
// maroto/v2 and returns the raw PDF bytes.
func GenerateQuotationPDF(data QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteMeta(m, data)
	addQuoteSupplierBlock(m, data)
	addQuoteItemsTable(m, data)
	addQuoteTotals(m, data)
	addQuoteFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addQuoteHeader adds the company letterhead on the left and the QUOTATION
// title on the right.
func addQuoteHeader(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("QUOTATION", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	contact := fmt.Sprintf("%s, %s | %s | %s",
		data.CompanyAddress, data.CompanyCity, data.CompanyPhone, data.CompanyEmail)
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(contact, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
		row.New(4).Add(col.New(12).Add(line.New())),
	)
}

// addQuoteMeta adds the quote number, issue date, supplier id and validity.
func addQuoteMeta(m core.Maroto, data QuoteExportData) {
	meta := [][2]string{
		{"QUOTE #", data.QuoteID},
		{"DATE", data.QuoteDate},
		{"SUPPLIER ID", data.SupplierID},
		{"VALID UNTIL", data.ValidUntil},
	}
	for _, pair := range meta {
		m.AddRows(
			row.New(5).Add(
				col.New(8),
				col.New(2).Add(
					text.New(pair[0], props.Text{
						Size:  8,
						Style: fontstyle.Bold,
						Align: align.Left,
					}),
				),
				col.New(2).Add(
					text.New(pair[1], props.Text{
						Size:  8,
						Align: align.Right,
					}),
				),
			),
		)
	}
	m.AddRows(row.New(3))
}

// addQuoteSupplierBlock adds the supplier the quotation is issued to.
func addQuoteSupplierBlock(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New("SUPPLIER", props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New(data.SupplierName, props.Text{
					Size:  10,
					Align: align.Left,
				}),
			),
		),
		row.New(3),
	)
}

// addQuoteItemsTable adds the line item table: # / product / unit / qty /
// unit price / total.
func addQuoteItemsTable(m core.Maroto, data QuoteExportData) {
	headerStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left, Color: &props.Color{Red: 255, Green: 255, Blue: 255}}
	headerBg := &props.Cell{BackgroundColor: &props.Color{Red: 51, Green: 51, Blue: 51}}

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New("#", headerStyle)).WithStyle(headerBg),
			col.New(5).Add(text.New("Product", headerStyle)).WithStyle(headerBg),
			col.New(1).Add(text.New("Unit", headerStyle)).WithStyle(headerBg),
			col.New(1).Add(text.New("Qty", headerStyle)).WithStyle(headerBg),
			col.New(2).Add(text.New("Unit Price", headerStyle)).WithStyle(headerBg),
			col.New(2).Add(text.New("Total", headerStyle)).WithStyle(headerBg),
		),
	)

	cell := props.Text{Size: 8, Align: align.Left}
	money := props.Text{Size: 8, Align: align.Right}
	altBg := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}

	for i, r := range data.Rows {
		colSINo := col.New(1).Add(text.New(fmt.Sprintf("%d", r.SINo), cell))
		colProduct := col.New(5).Add(text.New(r.Product, cell))
		colUnit := col.New(1).Add(text.New(r.Unit, cell))
		colQty := col.New(1).Add(text.New(FormatAmount(r.Qty), money))
		colPrice := col.New(2).Add(text.New(FormatAmount(r.UnitPrice), money))
		colTotal := col.New(2).Add(text.New(FormatAmount(r.Total), money))

		if i%2 == 1 {
			colSINo = colSINo.WithStyle(altBg)
			colProduct = colProduct.WithStyle(altBg)
			colUnit = colUnit.WithStyle(altBg)
			colQty = colQty.WithStyle(altBg)
			colPrice = colPrice.WithStyle(altBg)
			colTotal = colTotal.WithStyle(altBg)
		}

		m.AddRows(row.New(6).Add(colSINo, colProduct, colUnit, colQty, colPrice, colTotal))
	}
}

// addQuoteTotals adds the grand total line.
func addQuoteTotals(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(3).Add(col.New(12).Add(line.New())),
		row.New(8).Add(
			col.New(8),
			col.New(2).Add(
				text.New("GRAND TOTAL", props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(2).Add(
				text.New(FormatMoney(data.Currency, data.GrandTotal), props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)
}

// addQuoteFooter adds the terms note.
func addQuoteFooter(m core.Maroto) {
	m.AddRows(
		row.New(4),
		row.New(5).Add(
			col.New(12).Add(
				text.New("Prices are quoted per unit. This quotation is valid until the date shown above.", props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120},
				}),
			),
		),
	)
}
