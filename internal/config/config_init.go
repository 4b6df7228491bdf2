package config

import (
	"log"

	"github.com/Meesho/BharatMLStack/model-mux/internal/config/structs"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/config"
	"github.com/spf13/viper"
)

func InitConfig(appConfig *structs.AppConfig) {
	config.InitEnv()
	if err := config.LoadFileDefaults(); err != nil {
		log.Fatalf("Failed to load config file defaults: %v", err)
	}
	staticConfig := appConfig.GetStaticConfig()
	cfg, ok := staticConfig.(*structs.Configs)
	if !ok {
		log.Fatal("Failed to cast static config to *Configs")
	}
	bindEnvVars()
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("Failed to unmarshal config from environment: %v", err)
	}
}

func bindEnvVars() {
	viper.BindEnv("app_name", "APP_NAME")
	viper.BindEnv("app_env", "APP_ENV")
	viper.BindEnv("port", "PORT")
	viper.BindEnv("etcd_username", "ETCD_USERNAME")
	viper.BindEnv("etcd_password", "ETCD_PASSWORD")
	viper.BindEnv("etcd_server", "ETCD_SERVER")
	viper.BindEnv("etcd_watcher_enabled", "ETCD_WATCHER_ENABLED")
	viper.BindEnv("default_cache_capacity", "DEFAULT_CACHE_CAPACITY")
	viper.BindEnv("default_load_timeout_in_ms", "DEFAULT_LOAD_TIMEOUT_IN_MS")
	viper.BindEnv("schema_cache_size_in_mb", "SCHEMA_CACHE_SIZE_IN_MB")
	viper.BindEnv("schema_cache_ttl_in_seconds", "SCHEMA_CACHE_TTL_IN_SECONDS")
	viper.BindEnv("prediction_log_kafka_id", "PREDICTION_LOG_KAFKA_ID")
	viper.BindEnv("prediction_log_enabled", "PREDICTION_LOG_ENABLED")
}
