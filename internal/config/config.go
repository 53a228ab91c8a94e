// Package config builds the service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the server needs at startup. It is built once in
// main and passed down explicitly; nothing reads the environment after New
// returns.
type Config struct {
	Port int    `default:"5000"`                       // TCP port to listen on, all interfaces
	Mode string `envconfig:"GIN_MODE" default:"debug"` // gin mode: debug, release or test
}

// New reads the environment into a validated Config.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}

	switch c.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown gin mode: %q", c.Mode)
	}

	return nil
}

// Addr returns the listen address for http.Server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
