// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration. Nothing here persists game state: the
// wallet starts from StartingBalance on every boot.
type Config struct {
	// Port prefers PORT (Render, Fly.io, Railway, etc.), then CASINO_PORT.
	Port            int    `env:"PORT" envDefault:"0"`
	CasinoPort      int    `env:"CASINO_PORT" envDefault:"8081"`
	StartingBalance int64  `env:"CASINO_STARTING_BALANCE" envDefault:"40000"`
	HistorySize     int    `env:"CASINO_HISTORY_SIZE" envDefault:"100"`
	PaytableFile    string `env:"CASINO_PAYTABLE_FILE"`
	Debug           bool   `env:"CASINO_DEBUG"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StartingBalance < 0 {
		return nil, fmt.Errorf("starting balance must be non-negative, got %d", cfg.StartingBalance)
	}
	return cfg, nil
}

// Address returns the listen address, e.g. ":8081".
func (c *Config) Address() string {
	port := c.Port
	if port <= 0 {
		port = c.CasinoPort
	}
	if port <= 0 {
		port = 8081
	}
	return ":" + strconv.Itoa(port)
}
