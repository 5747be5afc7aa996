package port

import (
	"context"

	"voxbill/internal/domain"
)

// ExtractInput carries the text an extractor turns into a structured invoice.
type ExtractInput struct {
	Transcript string
}

// ExtractOutput contains the structured result from an LLM extractor.
type ExtractOutput struct {
	Invoice   *domain.InvoiceRecord
	ModelUsed string
}

// InvoiceExtractor abstracts LLM-based invoice extraction from free text.
type InvoiceExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
}
