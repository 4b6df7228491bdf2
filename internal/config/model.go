package config

// EndpointsPath is the etcd path holding one JSON document per served model,
// relative to the application's config root.
const EndpointsPath = "/endpoints"

// EndpointConfig describes one served model endpoint. Stored as a JSON value
// at /config/<app>/endpoints/<model-name> in etcd.
type EndpointConfig struct {
	ModelName      string  `json:"model_name"`
	DefaultVersion string  `json:"default_version"`
	CacheCapacity  int     `json:"cache_capacity"`
	LoadTimeoutMs  int     `json:"load_timeout_ms"`
	RateLimitRPS   float64 `json:"rate_limit_rps"`
	RateLimitBurst int     `json:"rate_limit_burst"`
	KafkaLoggerId  int     `json:"kafka_logger_id"`
	Enabled        bool    `json:"enabled"`
}
