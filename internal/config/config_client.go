package config

import (
	"fmt"
	"time"
)

// ClientConfig holds the settings of the command-line API client.
// It is read from environment variables only; command-line arguments of
// the client are reserved for the command itself.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the catalog API
	// (e.g. "localhost:8080" or "https://gifts.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// Token is the credential sent with protected requests.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// GetClientConfig loads the client configuration from the environment
// (and a .env file, when present) and validates it.
func GetClientConfig() (*ClientConfig, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	return cfg, cfg.validate()
}
