// Package services holds the quotation draft state machine, pricing and
// formatting helpers, document export generation and upload pre-validation.
package services

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice reads a backend decimal string ("10.50") into a float64.
// Absent or malformed values collapse to 0; offerings without a price are
// still quotable, just at zero.
func ParsePrice(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatAmount renders a money amount with exactly two decimal places,
// matching what the backend expects in quotation payloads.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatMoney renders an amount for display, prefixed with its currency
// code ("USD 25.50").
func FormatMoney(currency string, v float64) string {
	if currency == "" {
		return FormatAmount(v)
	}
	return currency + " " + FormatAmount(v)
}
