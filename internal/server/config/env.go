package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// loadDotEnv loads ./.env into the process environment if it exists.
// Variables already set are not overridden.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func environ() map[string]string {
	return env.ToMap(os.Environ())
}

// parseEnv overlays fields whose variables are present in environment.
// Unset variables leave the field untouched.
func parseEnv(cfg *Config, environment map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
