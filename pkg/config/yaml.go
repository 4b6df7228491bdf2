package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envConfigFile = "CONFIG_FILE"

// LoadFileDefaults overlays a flat YAML file of key: value pairs as viper
// defaults. Environment variables still win, so deployments override the
// file without editing it. The file is optional; a missing CONFIG_FILE env
// is a no-op.
func LoadFileDefaults() error {
	path := os.Getenv(envConfigFile)
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	defaults := make(map[string]interface{})
	if err := yaml.Unmarshal(raw, &defaults); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
	log.Info().Str("file", path).Int("keys", len(defaults)).Msg("Loaded config file defaults")
	return nil
}
