package domain

import (
	"encoding/json"
	"strings"
)

// FlexString is a string that also unmarshals from a JSON number. LLM output and
// hand-edited forms are inconsistent about quoting monetary values and quantities,
// so every numeric-ish invoice field is carried as a FlexString and coerced later.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// null or malformed: degrade to empty rather than failing the whole record
		*f = ""
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// IsBlank reports whether the value is empty or whitespace only.
func (f FlexString) IsBlank() bool { return strings.TrimSpace(string(f)) == "" }

// Party identifies one side of an invoice (issuer or client). All fields optional.
type Party struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// HasContent reports whether any field is non-empty; a party section is rendered
// only when this is true.
func (p Party) HasContent() bool {
	return strings.TrimSpace(p.Name) != "" ||
		strings.TrimSpace(p.Contact) != "" ||
		strings.TrimSpace(p.Address) != "" ||
		strings.TrimSpace(p.Email) != ""
}

// LineItem is one billable row. Order is significant: render order equals input
// order and row numbering is the 1-based position.
type LineItem struct {
	Description string     `json:"description"`
	Quantity    FlexString `json:"quantity"`
	UnitPrice   FlexString `json:"unitPrice"`
	TotalPrice  FlexString `json:"totalPrice"`
}

// Charge is a VAT or tax entry: an amount interpreted per its mode.
type Charge struct {
	Amount FlexString `json:"amount"`
	Mode   ChargeMode `json:"mode"`
}

// IsSet reports whether the charge carries a usable amount.
func (c Charge) IsSet() bool { return !c.Amount.IsBlank() }

// InvoiceRecord is the canonical structured invoice consumed by the calculator and
// the layout engine. It is built once per save request, immutable thereafter, and
// archived as a JSON snapshot beside the rendered PDF.
type InvoiceRecord struct {
	InvoiceNumber  string        `json:"invoiceNumber"`
	IssueDate      string        `json:"issueDate"`
	DueDate        string        `json:"dueDate"`
	PaymentStatus  PaymentStatus `json:"paymentStatus"`
	CurrencySymbol string        `json:"currencySymbol"`
	Issuer         Party         `json:"issuer"`
	Client         Party         `json:"client"`
	LineItems      []LineItem    `json:"lineItems"`
	ShippingCost   FlexString    `json:"shippingCost"`
	VAT            Charge        `json:"vat"`
	Tax            Charge        `json:"tax"`
	TotalAmount    FlexString    `json:"totalAmount"`
	PaymentMethod  string        `json:"paymentMethod"`
	EndNote        string        `json:"endNote"`
	LogoImage      string        `json:"logoImage"`
}

// Status returns the payment status, defaulting to UNPAID for unknown values.
func (r *InvoiceRecord) Status() PaymentStatus {
	if r.PaymentStatus == PaymentStatusPaid {
		return PaymentStatusPaid
	}
	return PaymentStatusUnpaid
}

// ContactSubmission is a contact form payload relayed to the email sender.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
