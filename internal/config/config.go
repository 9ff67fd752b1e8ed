// Package config loads runtime settings from a .env file and the
// process environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the mazesim runtime settings.
type Config struct {
	// GraphPath points at the maze definition file.
	GraphPath string `env:"MAZESIM_GRAPH" envDefault:"graphWeights"`
	// JournalPath enables the SQLite run journal when non-empty.
	JournalPath string `env:"MAZESIM_DB"`
	// Seed fixes the drive randomization; 0 means seed from the clock.
	Seed int64 `env:"MAZESIM_SEED" envDefault:"0"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"MAZESIM_LOG_LEVEL" envDefault:"info"`
}

// Load reads .env when present, then parses the environment.
func Load() (*Config, error) {
	// A missing .env just means plain environment variables.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
