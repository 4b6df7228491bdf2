package config

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	initialized = false
	once        sync.Once
)

// InitEnv wires viper to the process environment. Every config read in the
// service goes through viper, so this must run before anything else.
func InitEnv() {
	if initialized {
		log.Debug().Msg("Env already initialized!")
		return
	}
	once.Do(func() {
		viper.AutomaticEnv()
		initialized = true
	})
}
