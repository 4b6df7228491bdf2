package etcd

import (
	"sync"

	"github.com/Meesho/BharatMLStack/model-mux/internal/config/structs"
	"github.com/rs/zerolog/log"
)

var (
	instance       Etcd
	etcdServers    string
	username       string
	password       string
	watcherEnabled bool
	initOnce       sync.Once
)

// Init initializes the Etcd client, to be called from main.go
func Init(appConfig structs.Configs) {
	initOnce.Do(func() {
		etcdServers = appConfig.EtcdServer
		username = appConfig.EtcdUsername
		password = appConfig.EtcdPassword
		watcherEnabled = appConfig.EtcdWatcherEnabled
	})
	if instance == nil {
		instance = newV1Etcd(appConfig.AppName)
	}
}

// Instance returns the Etcd client instance. Ensure that Init is called before calling this function
func Instance() Etcd {
	if instance == nil {
		log.Panic().Msg("etcd client not initialized, call Init first")
	}
	return instance
}

// SetMockInstance sets the mock instance of Etcd client
// This would be handy in places where we are directly using Etcd as etcd.Instance()
func SetMockInstance(mock Etcd) {
	instance = mock
}
