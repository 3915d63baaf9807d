// Package config loads runtime configuration from the environment and an
// optional .env file in the working directory. The environment wins.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no Gemini credential can be found.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY not found in environment; export it or create a .env file with your API key")

// Config holds everything needed for one analysis run.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Load reads ./.env (if present) plus the environment.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit env-file path, for tests.
func LoadFrom(envFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	apiKey := v.GetString("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &Config{
		APIKey:  apiKey,
		Model:   v.GetString("CHOPTIMIZE_MODEL"),
		BaseURL: v.GetString("CHOPTIMIZE_BASE_URL"),
	}

	if raw := v.GetString("CHOPTIMIZE_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CHOPTIMIZE_TIMEOUT %q: %w", raw, err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}
