// Package money holds the monetary coercion and totals arithmetic for invoice
// rendering. Every parse in this package is total: bad input degrades to zero,
// it never returns an error.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount coerces a free-form monetary string into a decimal. The record's
// currency symbol and thousands separators are stripped first, since upstream
// totals sometimes arrive with the symbol already embedded ("$250.00").
//
// The second return value is false when the input was blank or unparsable and the
// zero value was substituted, so callers can tell a defaulted zero from a real one.
func ParseAmount(val, currencySymbol string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(val)
	if currencySymbol != "" {
		cleaned = strings.ReplaceAll(cleaned, currencySymbol, "")
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseQuantity coerces a quantity string into a non-negative count. Fractional
// quantities are floored, not rounded ("3.9" counts as 3).
func ParseQuantity(val string) int64 {
	d, ok := ParseAmount(val, "")
	if !ok || d.IsNegative() {
		return 0
	}
	return d.IntPart()
}

// Format renders a decimal with exactly two decimal places.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
