package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"voxbill/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendContactMessage(ctx context.Context, msg domain.ContactSubmission) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
