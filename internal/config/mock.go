package config

import (
	"github.com/stretchr/testify/mock"
)

type MockConfigManager struct {
	mock.Mock
}

// Ensure MockConfigManager implements Manager interface
var _ Manager = (*MockConfigManager)(nil)

func (m *MockConfigManager) GetEndpointConfigs() (map[string]EndpointConfig, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]EndpointConfig), args.Error(1)
}

func (m *MockConfigManager) GetEndpointConfig(model string) (*EndpointConfig, error) {
	args := m.Called(model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*EndpointConfig), args.Error(1)
}

func (m *MockConfigManager) RegisterEndpoint(model string, endpoint EndpointConfig) error {
	args := m.Called(model, endpoint)
	return args.Error(0)
}

func (m *MockConfigManager) UpdateEndpoint(model string, endpoint EndpointConfig) error {
	args := m.Called(model, endpoint)
	return args.Error(0)
}

func (m *MockConfigManager) DeleteEndpoint(model string) error {
	args := m.Called(model)
	return args.Error(0)
}

func (m *MockConfigManager) RegisterWatchPathCallbackWithEvent(path string, callback func(key, value, eventType string) error) error {
	args := m.Called(path, callback)
	return args.Error(0)
}
