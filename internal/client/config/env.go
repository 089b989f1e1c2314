package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "NUTRITRACK_CLIENT_"

func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
