package inmemorycache

import (
	"github.com/stretchr/testify/mock"
)

// MockInMemoryCacheClient is a mock implementation of the InMemoryCache interface.
type MockInMemoryCacheClient struct {
	mock.Mock
}

// Ensure MockInMemoryCacheClient implements InMemoryCache interface
var _ InMemoryCache = (*MockInMemoryCacheClient)(nil)

func (m *MockInMemoryCacheClient) Get(key []byte) ([]byte, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockInMemoryCacheClient) Set(key, value []byte) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockInMemoryCacheClient) SetEx(key, value []byte, expiryInSec int) error {
	args := m.Called(key, value, expiryInSec)
	return args.Error(0)
}

func (m *MockInMemoryCacheClient) Delete(key []byte) bool {
	args := m.Called(key)
	return args.Bool(0)
}

func (m *MockInMemoryCacheClient) SizeInMb() int {
	args := m.Called()
	return args.Int(0)
}
