package structs

var (
	appConfig AppConfig
)

type AppConfig struct {
	Configs Configs
}

func (cfg *AppConfig) GetStaticConfig() interface{} {
	return &cfg.Configs
}

func GetAppConfig() *AppConfig {
	return &appConfig
}

type Configs struct {
	AppName                    string `mapstructure:"app_name"`
	AppEnv                     string `mapstructure:"app_env"`
	Port                       int    `mapstructure:"port"`
	EtcdUsername               string `mapstructure:"etcd_username"`
	EtcdPassword               string `mapstructure:"etcd_password"`
	EtcdServer                 string `mapstructure:"etcd_server"`
	EtcdWatcherEnabled         bool   `mapstructure:"etcd_watcher_enabled"`
	DefaultCacheCapacity       int    `mapstructure:"default_cache_capacity"`
	DefaultLoadTimeoutInMs     int    `mapstructure:"default_load_timeout_in_ms"`
	SchemaCacheSizeInMb        int    `mapstructure:"schema_cache_size_in_mb"`
	SchemaCacheTtlInSeconds    int    `mapstructure:"schema_cache_ttl_in_seconds"`
	PredictionLogKafkaId       int    `mapstructure:"prediction_log_kafka_id"`
	PredictionLogEnabled       bool   `mapstructure:"prediction_log_enabled"`
}
