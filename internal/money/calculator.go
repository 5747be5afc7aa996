package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"voxbill/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Totals carries the computed monetary summary for one invoice. Presence flags
// distinguish an omitted section from a provided zero ("0" shipping still renders).
type Totals struct {
	Subtotal decimal.Decimal

	VAT      decimal.Decimal
	VATLabel string
	HasVAT   bool

	Tax      decimal.Decimal
	TaxLabel string
	HasTax   bool

	Shipping    decimal.Decimal
	HasShipping bool

	// GrandTotal is the caller-supplied total, taken as authoritative for display.
	// It is deliberately not recomputed from subtotal+VAT+tax+shipping.
	GrandTotal decimal.Decimal
}

// Compute derives the totals for a record. It is a pure function and never fails:
// every coercion degrades to zero.
func Compute(rec *domain.InvoiceRecord) Totals {
	var t Totals

	t.Subtotal = decimal.Zero
	for _, item := range rec.LineItems {
		v, _ := ParseAmount(item.TotalPrice.String(), rec.CurrencySymbol)
		t.Subtotal = t.Subtotal.Add(v)
	}

	if rec.VAT.IsSet() {
		t.HasVAT = true
		t.VAT, t.VATLabel = applyCharge("VAT", rec.VAT, t.Subtotal, rec.CurrencySymbol)
	}
	if rec.Tax.IsSet() {
		t.HasTax = true
		// tax applies to the same subtotal, independent of VAT
		t.Tax, t.TaxLabel = applyCharge("Tax", rec.Tax, t.Subtotal, rec.CurrencySymbol)
	}

	if !rec.ShippingCost.IsBlank() {
		t.HasShipping = true
		t.Shipping, _ = ParseAmount(rec.ShippingCost.String(), rec.CurrencySymbol)
	}

	t.GrandTotal, _ = ParseAmount(rec.TotalAmount.String(), rec.CurrencySymbol)
	return t
}

// applyCharge evaluates one VAT/tax entry against the subtotal. FIXED amounts are
// taken flat; everything else, including unrecognized modes, behaves as PERCENTAGE.
func applyCharge(name string, c domain.Charge, subtotal decimal.Decimal, currencySymbol string) (decimal.Decimal, string) {
	amount, _ := ParseAmount(c.Amount.String(), currencySymbol)
	if c.Mode == domain.ChargeModeFixed {
		return amount, name
	}
	value := subtotal.Mul(amount).Div(hundred)
	return value, fmt.Sprintf("%s (%s%%)", name, amount.String())
}
