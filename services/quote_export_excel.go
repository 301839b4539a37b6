package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuotationExcel creates an Excel rendition of a quotation and
// returns the file contents.
func GenerateQuotationExcel(data QuoteExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quotation"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	widths := map[string]float64{"A": 6, "B": 40, "C": 12, "D": 8, "E": 14, "F": 14}
	for col, w := range widths {
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{
		NumFmt: 2, // 0.00
	})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 12},
		NumFmt: 2,
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// Letterhead.
	set := func(cell string, value any) error {
		return f.SetCellValue(sheetName, cell, value)
	}
	if err := set("A1", data.CompanyName); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}
	if err := set("D1", data.CompanyAddress+", "+data.CompanyCity); err != nil {
		return nil, err
	}
	if err := set("A2", "QUOTATION"); err != nil {
		return nil, err
	}
	if err := set("D2", "Phone: "+data.CompanyPhone); err != nil {
		return nil, err
	}
	if err := set("D3", "Email: "+data.CompanyEmail); err != nil {
		return nil, err
	}

	// Meta block.
	meta := [][2]string{
		{"QUOTE #:", data.QuoteID},
		{"DATE ISSUED:", data.QuoteDate},
		{"SUPPLIER:", data.SupplierName},
		{"VALID UNTIL:", data.ValidUntil},
		{"CURRENCY:", data.Currency},
	}
	rowIdx := 5
	for _, pair := range meta {
		if err := set(fmt.Sprintf("A%d", rowIdx), pair[0]); err != nil {
			return nil, err
		}
		if err := set(fmt.Sprintf("B%d", rowIdx), pair[1]); err != nil {
			return nil, err
		}
		rowIdx++
	}
	rowIdx++

	// Items table.
	headers := []string{"#", "Product", "Unit", "Qty", "Unit Price", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx)
		if err := set(cell, h); err != nil {
			return nil, err
		}
	}
	startCell, _ := excelize.CoordinatesToCellName(1, rowIdx)
	endCell, _ := excelize.CoordinatesToCellName(len(headers), rowIdx)
	if err := f.SetCellStyle(sheetName, startCell, endCell, headerStyle); err != nil {
		return nil, err
	}
	rowIdx++

	for _, r := range data.Rows {
		values := []any{r.SINo, r.Product, r.Unit, r.Qty, r.UnitPrice, r.Total}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx)
			if err := set(cell, v); err != nil {
				return nil, err
			}
		}
		priceStart, _ := excelize.CoordinatesToCellName(5, rowIdx)
		priceEnd, _ := excelize.CoordinatesToCellName(6, rowIdx)
		if err := f.SetCellStyle(sheetName, priceStart, priceEnd, moneyStyle); err != nil {
			return nil, err
		}
		rowIdx++
	}

	// Grand total.
	rowIdx++
	if err := set(fmt.Sprintf("E%d", rowIdx), "GRAND TOTAL"); err != nil {
		return nil, err
	}
	if err := set(fmt.Sprintf("F%d", rowIdx), data.GrandTotal); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, fmt.Sprintf("E%d", rowIdx), fmt.Sprintf("F%d", rowIdx), totalStyle); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel file: %w", err)
	}
	return buf.Bytes(), nil
}
