package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

const validCSV = `Supplier Name,Product Name,Unit,Retail Price,Wholesale Price
Acme Traders,Rice 5kg,bag,10.00,8.50
Acme Traders,Sugar 1kg,pkt,5.00,4.25
`

func TestCheckSupplierList_ValidCSV(t *testing.T) {
	result, err := CheckSupplierList("suppliers.csv", strings.NewReader(validCSV))
	if err != nil {
		t.Fatalf("CheckSupplierList() error = %v", err)
	}
	if !result.OK() {
		t.Errorf("expected valid file, got errors: %v", result.Errors)
	}
	if result.TotalRows != 2 || result.ValidRows != 2 {
		t.Errorf("expected 2/2 valid rows, got %d/%d", result.ValidRows, result.TotalRows)
	}
}

func TestCheckSupplierList_MissingRequiredValue(t *testing.T) {
	csvData := `Supplier Name,Product Name,Retail Price
Acme Traders,,10.00
,Rice 5kg,5.00
Acme Traders,Sugar 1kg,4.00
`
	result, err := CheckSupplierList("suppliers.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("CheckSupplierList() error = %v", err)
	}
	if result.OK() {
		t.Fatal("expected validation errors")
	}
	if result.ErrorRows != 2 || result.ValidRows != 1 {
		t.Errorf("expected 2 error rows and 1 valid, got %d errors, %d valid", result.ErrorRows, result.ValidRows)
	}
	// Row numbers are 1-based and account for the header row.
	if result.Errors[0].Row != 2 {
		t.Errorf("expected first error on row 2, got %d", result.Errors[0].Row)
	}
	if !strings.Contains(result.Errors[0].Message, "required") {
		t.Errorf("expected a required-field message, got %q", result.Errors[0].Message)
	}
}

func TestCheckSupplierList_NonNumericPrice(t *testing.T) {
	csvData := `Supplier Name,Product Name,Retail Price
Acme Traders,Rice 5kg,ten dollars
`
	result, err := CheckSupplierList("suppliers.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("CheckSupplierList() error = %v", err)
	}
	if result.OK() {
		t.Fatal("expected validation errors")
	}
	if !strings.Contains(result.Errors[0].Message, "must be a number") {
		t.Errorf("expected numeric error, got %q", result.Errors[0].Message)
	}
}

func TestCheckSupplierList_MissingRequiredColumn(t *testing.T) {
	csvData := `Supplier Name,Unit
Acme Traders,bag
`
	_, err := CheckSupplierList("suppliers.csv", strings.NewReader(csvData))
	if err == nil {
		t.Fatal("expected error for missing Product Name column")
	}
	if !strings.Contains(err.Error(), "Product Name") {
		t.Errorf("expected missing column error, got %v", err)
	}
}

func TestCheckSupplierList_UnknownColumn(t *testing.T) {
	csvData := `Supplier Name,Product Name,Shoe Size
Acme Traders,Rice 5kg,42
`
	_, err := CheckSupplierList("suppliers.csv", strings.NewReader(csvData))
	if err == nil {
		t.Fatal("expected error for unrecognized column")
	}
	if !strings.Contains(err.Error(), "Shoe Size") {
		t.Errorf("expected unknown column named in error, got %v", err)
	}
}

func TestCheckSupplierList_UnsupportedExtension(t *testing.T) {
	_, err := CheckSupplierList("suppliers.pdf", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error for unsupported file type")
	}
}

func TestCheckSupplierList_HeaderOnly(t *testing.T) {
	_, err := CheckSupplierList("suppliers.csv", strings.NewReader("Supplier Name,Product Name\n"))
	if err == nil {
		t.Fatal("expected error for file without data rows")
	}
}

func TestCheckSupplierList_SnakeCaseHeaders(t *testing.T) {
	csvData := `supplier_name,product_name,retail_price
Acme Traders,Rice 5kg,10.00
`
	result, err := CheckSupplierList("suppliers.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("CheckSupplierList() error = %v", err)
	}
	if !result.OK() {
		t.Errorf("expected snake_case headers accepted, got errors: %v", result.Errors)
	}
}

func TestCheckSupplierList_Excel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Supplier Name", "Product Name", "Retail Price"},
		{"Acme Traders", "Rice 5kg", "10.00"},
		{"Acme Traders", "Sugar 1kg", "not a price"},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("failed to build test workbook: %v", err)
			}
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("failed to write test workbook: %v", err)
	}
	f.Close()

	result, err := CheckSupplierList("suppliers.xlsx", bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("CheckSupplierList() error = %v", err)
	}
	if result.TotalRows != 2 {
		t.Errorf("expected 2 data rows, got %d", result.TotalRows)
	}
	if result.ValidRows != 1 || result.ErrorRows != 1 {
		t.Errorf("expected 1 valid and 1 error row, got %d and %d", result.ValidRows, result.ErrorRows)
	}
}

func TestGenerateSupplierListTemplate(t *testing.T) {
	content, err := GenerateSupplierListTemplate()
	if err != nil {
		t.Fatalf("GenerateSupplierListTemplate() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("template is not valid Excel: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	first, _ := f.GetCellValue(sheet, "A1")
	if first != "Supplier Name" {
		t.Errorf("expected 'Supplier Name' header in A1, got %q", first)
	}

	// The generated template must pass its own validation.
	result, err := CheckSupplierList("template.xlsx", bytes.NewReader(content))
	if err != nil {
		t.Fatalf("template failed its own check: %v", err)
	}
	if !result.OK() {
		t.Errorf("template example row should validate, got errors: %v", result.Errors)
	}
}
