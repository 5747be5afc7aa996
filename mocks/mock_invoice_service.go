package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"voxbill/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GenerateFromText(ctx context.Context, text string) (*service.GenerateOutput, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerateOutput), args.Error(1)
}

func (m *MockInvoiceService) GenerateFromAudio(ctx context.Context, input service.AudioInput) (*service.GenerateOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerateOutput), args.Error(1)
}
