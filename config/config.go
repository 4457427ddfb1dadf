package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the process settings, populated from the environment. The
// defaults match a local single-user setup: bind to loopback on 8000 and
// keep the data file next to the binary.
type Config struct {
	ServerHost     string `envconfig:"SERVER_HOST" default:"127.0.0.1"`
	ServerPort     int    `envconfig:"SERVER_PORT" default:"8000"`
	DataFile       string `envconfig:"DATA_FILE" default:"activity.json"`
	FrontendOrigin string `envconfig:"FRONTEND_ORIGIN"`
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment configuration: %w", err)
	}
	return cfg, nil
}

// Addr is the host:port pair the HTTP server binds to.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}
