// Package config provides environment-driven configuration for the konig command.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvLogLevel     = "KONIG_LOG_LEVEL"
	EnvLogFormat    = "KONIG_LOG_FORMAT"
	EnvOutputFormat = "KONIG_OUTPUT_FORMAT"
	EnvOrder        = "KONIG_ORDER"
	EnvGreedy       = "KONIG_GREEDY"
	EnvVerify       = "KONIG_VERIFY"
)

// Config holds all command configuration values.
type Config struct {
	LogLevel     string
	LogFormat    string
	OutputFormat string
	Order        string
	Greedy       bool
	Verify       bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:     envOrDefault(EnvLogLevel, "info"),
		LogFormat:    envOrDefault(EnvLogFormat, "text"),
		OutputFormat: envOrDefault(EnvOutputFormat, "text"),
		Order:        envOrDefault(EnvOrder, "first-seen"),
	}

	var err error
	if cfg.Greedy, err = envBool(EnvGreedy, true); err != nil {
		return nil, err
	}
	if cfg.Verify, err = envBool(EnvVerify, false); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// LoadFile loads a dotenv file into the environment and then calls Load.
// Variables already set in the environment win over the file.
func LoadFile(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", path, err)
		}
	}

	return Load()
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}

	return b, nil
}
