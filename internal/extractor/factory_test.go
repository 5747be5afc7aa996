package extractor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"voxbill/internal/config"
	"voxbill/internal/extractor"
	"voxbill/internal/port"
)

func TestNewExtractor_UnknownProvider(t *testing.T) {
	_, err := extractor.NewExtractor(&config.ExtractorProviderConfig{Provider: "nope"})

	assert.ErrorContains(t, err, "unknown extractor provider")
}

func TestNewExtractor_RegisteredProvider(t *testing.T) {
	extractor.RegisterProvider("demo", extractor.NewDemoExtractor)

	ex, err := extractor.NewExtractor(&config.ExtractorProviderConfig{Provider: "demo"})

	assert.NoError(t, err)
	assert.NotNil(t, ex)
}

func TestDemoExtractor_DeterministicShape(t *testing.T) {
	ex, err := extractor.NewDemoExtractor(nil)
	assert.NoError(t, err)

	out, err := ex.Extract(context.Background(), port.ExtractInput{Transcript: "invoice Acme for two hours"})

	assert.NoError(t, err)
	assert.Equal(t, "demo", out.ModelUsed)
	assert.Contains(t, out.Invoice.InvoiceNumber, "INV-")
	assert.Len(t, out.Invoice.LineItems, 1)
	assert.Equal(t, "invoice Acme for two hours", out.Invoice.LineItems[0].Description)
	assert.Equal(t, "100.00", out.Invoice.TotalAmount.String())
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 30, extractor.ParseRetryAfterHeader("30"))
	assert.Equal(t, 0, extractor.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, extractor.ParseRetryAfterHeader("Wed, 21 Oct 2026 07:28:00 GMT"))
}
