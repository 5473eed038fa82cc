package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// envOverrides are read from the environment after the config file.
type envOverrides struct {
	Path     string  `env:"GOTCHA_CONFIG"`
	LogLevel string  `env:"GOTCHA_LOG_LEVEL"`
	Seed     *uint64 `env:"GOTCHA_SEED"`
	MaxDepth *int    `env:"GOTCHA_MAX_DEPTH"`
}

func parseEnv() (envOverrides, error) {
	var e envOverrides
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

func (e envOverrides) apply(v *viper.Viper) {
	if e.LogLevel != "" {
		v.Set("logLevel", e.LogLevel)
	}
	if e.Seed != nil {
		v.Set("seed", *e.Seed)
	}
	if e.MaxDepth != nil {
		v.Set("maxDepth", *e.MaxDepth)
	}
}
