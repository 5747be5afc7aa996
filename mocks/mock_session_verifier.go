package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"voxbill/internal/port"
)

// MockSessionVerifier is a mock implementation of port.SessionVerifier.
type MockSessionVerifier struct {
	mock.Mock
}

func (m *MockSessionVerifier) VerifySession(ctx context.Context, token string) (*port.SessionClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.SessionClaims), args.Error(1)
}
