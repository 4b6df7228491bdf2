package config

type Manager interface {
	GetEndpointConfigs() (map[string]EndpointConfig, error)
	GetEndpointConfig(model string) (*EndpointConfig, error)
	RegisterEndpoint(model string, endpoint EndpointConfig) error
	UpdateEndpoint(model string, endpoint EndpointConfig) error
	DeleteEndpoint(model string) error
	RegisterWatchPathCallbackWithEvent(path string, callback func(key, value, eventType string) error) error
}
