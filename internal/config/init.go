package config

import (
	"sync"
)

var (
	manager        Manager
	once           sync.Once
	DefaultVersion = 1
)

func NewManager(version int) Manager {
	switch version {
	case DefaultVersion:
		return initMuxManager()
	default:
		return nil
	}
}

func SetInstance(provider Manager) {
	manager = provider
	once.Do(func() {})
}
