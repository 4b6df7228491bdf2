package etcd

import (
	"github.com/stretchr/testify/mock"
)

// MockEtcd is a mock implementation of the Etcd interface for testing.
type MockEtcd struct {
	mock.Mock
}

// Ensure MockEtcd implements Etcd interface
var _ Etcd = (*MockEtcd)(nil)

// GetValue mocks fetching the value at the given path.
func (m *MockEtcd) GetValue(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

// GetValues mocks fetching all leaf values under the given path.
func (m *MockEtcd) GetValues(path string) (map[string]string, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

// SetValue mocks setting a value at the given path.
func (m *MockEtcd) SetValue(path string, value interface{}) error {
	args := m.Called(path, value)
	return args.Error(0)
}

// SetValues mocks setting multiple values.
func (m *MockEtcd) SetValues(paths map[string]interface{}) error {
	args := m.Called(paths)
	return args.Error(0)
}

// CreateNode mocks creating a node at the given path.
func (m *MockEtcd) CreateNode(path string, value interface{}) error {
	args := m.Called(path, value)
	return args.Error(0)
}

// CreateNodes mocks creating multiple nodes.
func (m *MockEtcd) CreateNodes(paths map[string]interface{}) error {
	args := m.Called(paths)
	return args.Error(0)
}

// DeleteNode mocks deleting the node at the given path.
func (m *MockEtcd) DeleteNode(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// IsNodeExist mocks checking if a node exists.
func (m *MockEtcd) IsNodeExist(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

// IsLeafNodeExist mocks checking if a leaf node exists.
func (m *MockEtcd) IsLeafNodeExist(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

// RegisterWatchPathCallbackWithEvent mocks registering a watch callback.
func (m *MockEtcd) RegisterWatchPathCallbackWithEvent(path string, callback func(key, value, eventType string) error) error {
	args := m.Called(path, callback)
	return args.Error(0)
}
