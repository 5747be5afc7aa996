package extractor

import (
	"context"
	"fmt"
	"time"

	"voxbill/internal/config"
	"voxbill/internal/domain"
	"voxbill/internal/port"
)

// DemoExtractor returns a minimal deterministic invoice so the API stays usable
// without any LLM credentials configured.
type DemoExtractor struct {
	now func() time.Time
}

// NewDemoExtractor creates a DemoExtractor.
func NewDemoExtractor(_ *config.ExtractorProviderConfig) (port.InvoiceExtractor, error) {
	return &DemoExtractor{now: time.Now}, nil
}

func (d *DemoExtractor) Extract(_ context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	now := d.now().UTC()
	desc := input.Transcript
	if len(desc) > 80 {
		desc = desc[:80]
	}

	rec := &domain.InvoiceRecord{
		InvoiceNumber: fmt.Sprintf("INV-%s", now.Format("20060102150405")),
		IssueDate:     now.Format("2006-01-02"),
		DueDate:       now.Format("2006-01-02"),
		PaymentStatus: domain.PaymentStatusUnpaid,
		Issuer:        domain.Party{Name: "Demo Issuer"},
		Client:        domain.Party{Name: "Demo Client"},
		LineItems: []domain.LineItem{
			{Description: desc, Quantity: "1", UnitPrice: "100.00", TotalPrice: "100.00"},
		},
		TotalAmount: "100.00",
	}

	return &port.ExtractOutput{Invoice: rec, ModelUsed: "demo"}, nil
}
