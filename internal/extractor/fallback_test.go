package extractor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"voxbill/internal/domain"
	"voxbill/internal/extractor"
	"voxbill/internal/port"
	"voxbill/mocks"
)

func extractOutput() *port.ExtractOutput {
	return &port.ExtractOutput{
		Invoice:   &domain.InvoiceRecord{InvoiceNumber: "INV-001"},
		ModelUsed: "test-model",
	}
}

func TestFallbackExtractor_PrimarySucceeds(t *testing.T) {
	primary := new(mocks.MockInvoiceExtractor)
	secondary := new(mocks.MockInvoiceExtractor)
	primary.On("Extract", mock.Anything, mock.Anything).Return(extractOutput(), nil)

	fb := extractor.NewFallbackExtractor(
		[]port.InvoiceExtractor{primary, secondary},
		[]string{"primary", "secondary"},
	)

	out, err := fb.Extract(context.Background(), port.ExtractInput{Transcript: "two hours of consulting"})

	assert.NoError(t, err)
	assert.Equal(t, "INV-001", out.Invoice.InvoiceNumber)
	secondary.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestFallbackExtractor_FallsBackOnError(t *testing.T) {
	primary := new(mocks.MockInvoiceExtractor)
	secondary := new(mocks.MockInvoiceExtractor)
	primary.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
	secondary.On("Extract", mock.Anything, mock.Anything).Return(extractOutput(), nil)

	fb := extractor.NewFallbackExtractor(
		[]port.InvoiceExtractor{primary, secondary},
		[]string{"primary", "secondary"},
	)

	out, err := fb.Extract(context.Background(), port.ExtractInput{Transcript: "text"})

	assert.NoError(t, err)
	assert.NotNil(t, out)
	primary.AssertExpectations(t)
	secondary.AssertExpectations(t)
}

func TestFallbackExtractor_RateLimitOpensCircuit(t *testing.T) {
	primary := new(mocks.MockInvoiceExtractor)
	secondary := new(mocks.MockInvoiceExtractor)
	rl := extractor.NewRateLimitError("primary", errors.New("429"), 120)
	primary.On("Extract", mock.Anything, mock.Anything).Return(nil, rl).Once()
	secondary.On("Extract", mock.Anything, mock.Anything).Return(extractOutput(), nil).Twice()

	fb := extractor.NewFallbackExtractor(
		[]port.InvoiceExtractor{primary, secondary},
		[]string{"primary", "secondary"},
	)

	// first call trips the primary's circuit
	_, err := fb.Extract(context.Background(), port.ExtractInput{Transcript: "text"})
	assert.NoError(t, err)

	// second call skips the primary entirely
	_, err = fb.Extract(context.Background(), port.ExtractInput{Transcript: "text"})
	assert.NoError(t, err)

	primary.AssertNumberOfCalls(t, "Extract", 1)
	secondary.AssertNumberOfCalls(t, "Extract", 2)
}

func TestFallbackExtractor_AllRateLimited(t *testing.T) {
	primary := new(mocks.MockInvoiceExtractor)
	secondary := new(mocks.MockInvoiceExtractor)
	primary.On("Extract", mock.Anything, mock.Anything).Return(nil, extractor.NewRateLimitError("primary", errors.New("429"), 60))
	secondary.On("Extract", mock.Anything, mock.Anything).Return(nil, extractor.NewRateLimitError("secondary", errors.New("429"), 30))

	fb := extractor.NewFallbackExtractor(
		[]port.InvoiceExtractor{primary, secondary},
		[]string{"primary", "secondary"},
	)

	_, err := fb.Extract(context.Background(), port.ExtractInput{Transcript: "text"})

	var rlErr *extractor.RateLimitError
	assert.ErrorAs(t, err, &rlErr)
}

func TestFallbackExtractor_AllFailed(t *testing.T) {
	primary := new(mocks.MockInvoiceExtractor)
	secondary := new(mocks.MockInvoiceExtractor)
	primary.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("primary down"))
	secondary.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("secondary down"))

	fb := extractor.NewFallbackExtractor(
		[]port.InvoiceExtractor{primary, secondary},
		[]string{"primary", "secondary"},
	)

	out, err := fb.Extract(context.Background(), port.ExtractInput{Transcript: "text"})

	assert.Nil(t, out)
	assert.ErrorContains(t, err, "all extractors failed")
	assert.ErrorContains(t, err, "secondary down")
}
