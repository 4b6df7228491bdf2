package etcd

import (
	"time"
)

const (
	configPath        = "/config/"
	connectionTimeout = 30 * time.Second
)

type Etcd interface {
	GetValue(path string) (string, error)
	GetValues(path string) (map[string]string, error)
	SetValue(path string, value interface{}) error
	SetValues(paths map[string]interface{}) error
	CreateNode(path string, value interface{}) error
	CreateNodes(paths map[string]interface{}) error
	DeleteNode(path string) error
	IsNodeExist(path string) (bool, error)
	IsLeafNodeExist(path string) (bool, error)
	RegisterWatchPathCallbackWithEvent(path string, callback func(key, value, eventType string) error) error
}
