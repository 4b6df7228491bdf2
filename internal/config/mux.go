package config

import (
	"encoding/json"
	"fmt"

	"github.com/Meesho/BharatMLStack/model-mux/pkg/etcd"
)

type MuxManager struct {
	etcd etcd.Etcd
}

// NewMuxManager creates a MuxManager with the given etcd client.
// Used for testing with a mock etcd.
func NewMuxManager(etcd etcd.Etcd) *MuxManager {
	return &MuxManager{etcd: etcd}
}

func initMuxManager() Manager {
	if manager == nil {
		once.Do(func() {
			manager = &MuxManager{
				etcd: etcd.Instance(),
			}
		})
	}
	return manager
}

// GetEndpointConfigs retrieves all endpoint configs keyed by model name.
func (m *MuxManager) GetEndpointConfigs() (map[string]EndpointConfig, error) {
	values, err := m.etcd.GetValues(EndpointsPath)
	if err != nil {
		return nil, err
	}
	endpoints := make(map[string]EndpointConfig, len(values))
	for model, raw := range values {
		var endpoint EndpointConfig
		if err := json.Unmarshal([]byte(raw), &endpoint); err != nil {
			return nil, fmt.Errorf("failed to parse endpoint config for model '%s': %w", model, err)
		}
		endpoints[model] = endpoint
	}
	return endpoints, nil
}

// GetEndpointConfig retrieves the endpoint config for a single model.
func (m *MuxManager) GetEndpointConfig(model string) (*EndpointConfig, error) {
	raw, err := m.etcd.GetValue(m.endpointPath(model))
	if err != nil {
		return nil, fmt.Errorf("endpoint config for model '%s' not found: %w", model, err)
	}
	var endpoint EndpointConfig
	if err := json.Unmarshal([]byte(raw), &endpoint); err != nil {
		return nil, fmt.Errorf("failed to parse endpoint config for model '%s': %w", model, err)
	}
	return &endpoint, nil
}

// RegisterEndpoint creates the endpoint config for a model.
// Fails if the model is already registered.
func (m *MuxManager) RegisterEndpoint(model string, endpoint EndpointConfig) error {
	raw, err := json.Marshal(endpoint)
	if err != nil {
		return err
	}
	return m.etcd.CreateNode(m.endpointPath(model), string(raw))
}

// UpdateEndpoint overwrites the endpoint config for a model.
func (m *MuxManager) UpdateEndpoint(model string, endpoint EndpointConfig) error {
	raw, err := json.Marshal(endpoint)
	if err != nil {
		return err
	}
	return m.etcd.SetValue(m.endpointPath(model), string(raw))
}

// DeleteEndpoint removes the endpoint config for a model.
func (m *MuxManager) DeleteEndpoint(model string) error {
	return m.etcd.DeleteNode(m.endpointPath(model))
}

// RegisterWatchPathCallbackWithEvent registers a callback for changes under
// the given path relative to the application's config root.
func (m *MuxManager) RegisterWatchPathCallbackWithEvent(path string, callback func(key, value, eventType string) error) error {
	return m.etcd.RegisterWatchPathCallbackWithEvent(path, callback)
}

func (m *MuxManager) endpointPath(model string) string {
	return EndpointsPath + "/" + model
}
