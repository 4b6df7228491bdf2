package config

import (
	"errors"

	"github.com/spf13/viper"
)

const (
	topics           = "_TOPICS"
	bootstrapURLs    = "_BOOTSTRAP_SERVERS"
	saslUsername     = "_SASL_USERNAME"
	saslPassword     = "_SASL_PASSWORD"
	saslMechanism    = "_SASL_MECHANISM"
	securityProtocol = "_SECURITY_PROTOCOL"
	clientId         = "_CLIENT_ID"
)

// ProducerConfig holds Kafka producer connection settings.
type ProducerConfig struct {
	BootstrapURLs    string
	SaslUsername     string
	SaslPassword     string
	SaslMechanism    string
	SecurityProtocol string
	ClientID         string
	Topics           string
}

type KafkaConfigGenerator interface {
	BuildProducerConfigFromEnv(envPrefix string) (*ProducerConfig, error)
}

type KafkaConfigGeneratorV1 struct{}

func NewKafkaConfig() *KafkaConfigGeneratorV1 {
	return &KafkaConfigGeneratorV1{}
}

// BuildProducerConfigFromEnv builds a ProducerConfig from env vars with the given prefix.
// Only requires topic, bootstrap servers, and client ID; auth fields are optional.
func (k *KafkaConfigGeneratorV1) BuildProducerConfigFromEnv(envPrefix string) (*ProducerConfig, error) {
	if !viper.IsSet(envPrefix + topics) {
		return nil, errors.New(envPrefix + topics + " not set")
	}
	if !viper.IsSet(envPrefix + bootstrapURLs) {
		return nil, errors.New(envPrefix + bootstrapURLs + " not set")
	}
	if !viper.IsSet(envPrefix + clientId) {
		return nil, errors.New(envPrefix + clientId + " not set")
	}

	return &ProducerConfig{
		Topics:           viper.GetString(envPrefix + topics),
		BootstrapURLs:    viper.GetString(envPrefix + bootstrapURLs),
		SaslUsername:     viper.GetString(envPrefix + saslUsername),
		SaslPassword:     viper.GetString(envPrefix + saslPassword),
		SaslMechanism:    viper.GetString(envPrefix + saslMechanism),
		SecurityProtocol: viper.GetString(envPrefix + securityProtocol),
		ClientID:         viper.GetString(envPrefix + clientId),
	}, nil
}
