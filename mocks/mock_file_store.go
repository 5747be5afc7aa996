package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockFileStore is a mock implementation of port.FileStore.
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(name string, data []byte) (string, error) {
	args := m.Called(name, data)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Open(name string) ([]byte, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFileStore) Exists(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

func (m *MockFileStore) Path(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}
