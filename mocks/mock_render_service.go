package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"voxbill/internal/domain"
	"voxbill/internal/service"
)

// MockRenderService is a mock implementation of service.RenderService.
type MockRenderService struct {
	mock.Mock
}

func (m *MockRenderService) SaveInvoice(ctx context.Context, rec *domain.InvoiceRecord) (*service.RenderResult, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RenderResult), args.Error(1)
}

func (m *MockRenderService) OpenDocument(name string) ([]byte, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
