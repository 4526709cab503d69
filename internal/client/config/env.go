package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "ACCOUNTS_"

// parseEnv overlays cfg with ACCOUNTS_* variables. Unset variables leave the
// field untouched.
func parseEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: envPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
