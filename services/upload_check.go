package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// UploadField describes one expected column of a supplier list file.
type UploadField struct {
	Key      string
	Label    string
	Required bool
	Numeric  bool
}

// SupplierListFields is the column contract for supplier list uploads.
// The backend does the real import; this check catches broken files before
// they leave the building.
var SupplierListFields = []UploadField{
	{Key: "supplier_name", Label: "Supplier Name", Required: true},
	{Key: "product_name", Label: "Product Name", Required: true},
	{Key: "unit", Label: "Unit"},
	{Key: "packing", Label: "Packing"},
	{Key: "country_of_origin", Label: "Country of Origin"},
	{Key: "currency", Label: "Currency"},
	{Key: "retail_price", Label: "Retail Price", Numeric: true},
	{Key: "wholesale_price", Label: "Wholesale Price", Numeric: true},
}

// UploadRowError is a single field-level error on one data row.
type UploadRowError struct {
	Row     int
	Field   string
	Message string
}

// UploadCheckResult summarizes the pre-validation of an uploaded file.
type UploadCheckResult struct {
	TotalRows int
	ValidRows int
	ErrorRows int
	Errors    []UploadRowError
}

// OK reports whether the file can be forwarded to the backend.
func (r UploadCheckResult) OK() bool {
	return r.ErrorRows == 0
}

// CheckSupplierList parses and validates a supplier list file before it is
// forwarded to the backend. filename decides the parser: .csv or .xlsx.
func CheckSupplierList(filename string, file io.Reader) (UploadCheckResult, error) {
	var headers []string
	var rows [][]string
	var err error

	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".csv"):
		headers, rows, err = parseCSVFile(file)
	case strings.HasSuffix(strings.ToLower(filename), ".xlsx"):
		headers, rows, err = parseExcelFile(file)
	default:
		return UploadCheckResult{}, fmt.Errorf("unsupported file type: %s (expected .csv or .xlsx)", filename)
	}
	if err != nil {
		return UploadCheckResult{}, err
	}

	fieldKeys, unknown := mapUploadHeaders(headers, SupplierListFields)
	if len(unknown) > 0 {
		return UploadCheckResult{}, fmt.Errorf("unrecognized columns: %s", strings.Join(unknown, ", "))
	}
	for _, field := range SupplierListFields {
		if !field.Required {
			continue
		}
		found := false
		for _, key := range fieldKeys {
			if key == field.Key {
				found = true
				break
			}
		}
		if !found {
			return UploadCheckResult{}, fmt.Errorf("missing required column: %s", field.Label)
		}
	}

	result := UploadCheckResult{TotalRows: len(rows)}
	fieldByKey := make(map[string]UploadField, len(SupplierListFields))
	for _, f := range SupplierListFields {
		fieldByKey[f.Key] = f
	}

	for i, row := range rows {
		rowNum := i + 2 // 1-based plus header row
		rowOK := true
		for colIdx, key := range fieldKeys {
			if key == "" {
				continue
			}
			value := ""
			if colIdx < len(row) {
				value = strings.TrimSpace(row[colIdx])
			}
			field := fieldByKey[key]
			if field.Required && value == "" {
				result.Errors = append(result.Errors, UploadRowError{
					Row: rowNum, Field: field.Label, Message: field.Label + " is required",
				})
				rowOK = false
				continue
			}
			if field.Numeric && value != "" {
				if _, err := strconv.ParseFloat(value, 64); err != nil {
					result.Errors = append(result.Errors, UploadRowError{
						Row: rowNum, Field: field.Label,
						Message: fmt.Sprintf("%s must be a number, got %q", field.Label, value),
					})
					rowOK = false
				}
			}
		}
		if rowOK {
			result.ValidRows++
		} else {
			result.ErrorRows++
		}
	}
	return result, nil
}

// parseCSVFile reads a CSV file and returns headers plus data rows.
func parseCSVFile(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return allRows[0], allRows[1:], nil
}

// parseExcelFile reads an xlsx file and returns headers plus data rows from
// the first sheet.
func parseExcelFile(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return rows[0], rows[1:], nil
}

// mapUploadHeaders maps uploaded column headers to field keys. Returns one
// key per column ("" for columns that are recognizably blank) and the list
// of headers that match nothing.
func mapUploadHeaders(headers []string, fields []UploadField) ([]string, []string) {
	labelToKey := make(map[string]string, len(fields)*2)
	for _, f := range fields {
		labelToKey[strings.ToLower(strings.TrimSpace(f.Label))] = f.Key
		labelToKey[f.Key] = f.Key
	}

	keys := make([]string, len(headers))
	var unknown []string
	for i, h := range headers {
		normalized := strings.ToLower(strings.TrimSpace(h))
		if normalized == "" {
			continue
		}
		normalized = strings.ReplaceAll(normalized, " ", "_")
		if key, ok := labelToKey[normalized]; ok {
			keys[i] = key
			continue
		}
		// Try the label form with spaces intact.
		if key, ok := labelToKey[strings.ToLower(strings.TrimSpace(h))]; ok {
			keys[i] = key
			continue
		}
		unknown = append(unknown, h)
	}
	return keys, unknown
}
