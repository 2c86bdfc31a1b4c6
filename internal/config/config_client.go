package config

import (
	"fmt"
)

// ClientConfig is the subset of [StructuredConfig] used by cmd/client.
type ClientConfig struct {
	Adapter Adapter
	Speech  Speech
}

// GetClientConfig builds the merged configuration and maps the client
// fields out of it.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: cfg.Adapter,
		Speech:  cfg.Speech,
	}
}
