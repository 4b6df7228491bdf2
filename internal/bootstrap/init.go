package bootstrap

import (
	"github.com/Meesho/BharatMLStack/model-mux/internal/config"
	"github.com/Meesho/BharatMLStack/model-mux/internal/config/structs"
	"github.com/Meesho/BharatMLStack/model-mux/internal/repositories/registry"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/etcd"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/inmemorycache"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/kafka"
)

func Init() {
	config.InitConfig(structs.GetAppConfig())
}

func InitServing() {
	Init()
	appConfig := structs.GetAppConfig().Configs
	etcd.Init(appConfig)
	inmemorycache.InitMultiInMemoryCacheWithConf([]inmemorycache.InMemoryCacheDetail{
		{Name: registry.SchemaCacheName, MemorySizeInMb: appConfig.SchemaCacheSizeInMb},
	})
	if appConfig.PredictionLogEnabled && appConfig.PredictionLogKafkaId > 0 {
		kafka.InitProducer(appConfig.PredictionLogKafkaId)
	}
}
