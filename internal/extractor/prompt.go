package extractor

// BuildInvoicePrompt returns the extraction prompt that turns a transaction
// description into the structured invoice schema.
func BuildInvoicePrompt(transcript string) string {
	return `You are an invoice data extraction assistant. Read the transaction description below and produce a structured invoice.

IMPORTANT INSTRUCTIONS:
- Extract EVERY billable item mentioned into the "lineItems" array, in the order they appear.
- Compute totalPrice for each item as quantity * unitPrice when not stated explicitly.
- Normalize dates to YYYY-MM-DD. Leave fields you cannot determine as empty strings.
- "paymentStatus" must be "PAID" or "UNPAID"; default to "UNPAID".
- "mode" for vat and tax must be "PERCENTAGE" or "FIXED".

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation — just the raw JSON object.

The JSON object must follow this schema:
{
  "invoiceNumber": "",
  "issueDate": "",
  "dueDate": "",
  "paymentStatus": "UNPAID",
  "currencySymbol": "",
  "issuer": {"name": "", "contact": "", "address": "", "email": ""},
  "client": {"name": "", "contact": "", "address": "", "email": ""},
  "lineItems": [
    {"description": "", "quantity": "1", "unitPrice": "0.00", "totalPrice": "0.00"}
  ],
  "shippingCost": "",
  "vat": {"amount": "", "mode": "PERCENTAGE"},
  "tax": {"amount": "", "mode": "PERCENTAGE"},
  "totalAmount": "0.00",
  "paymentMethod": "",
  "endNote": ""
}

Transaction description:
` + transcript
}
