package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a money string as it appears in source documents,
// e.g. "$1,234.50" or "30". Currency symbols and thousands separators are
// stripped. An empty string parses to zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// FormatAmount renders a decimal amount with exactly two decimal places.
// This is the only representation that crosses the API boundary.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// SumDebits returns the sum of the debit sides of the given line items.
func SumDebits(lines []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range lines {
		total = total.Add(li.Debit)
	}
	return total
}
