// Package config loads seedgen defaults from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds environment-variable defaults for the seedgen CLI. Command-line
// flags take precedence over these values.
type Env struct {
	Sources string `env:"SEEDGEN_SOURCES" envDefault:"all"`
	Count   int    `env:"SEEDGEN_COUNT" envDefault:"4"`
	Format  string `env:"SEEDGEN_FORMAT" envDefault:"hex"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
