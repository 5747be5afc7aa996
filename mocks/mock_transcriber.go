package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"voxbill/internal/port"
)

// MockTranscriber is a mock implementation of port.Transcriber.
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, input port.TranscribeInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
