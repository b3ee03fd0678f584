package config

import (
	"fmt"
	"slices"
)

var (
	logLevels     = []string{"panic", "fatal", "error", "warn", "warning", "info", "debug", "trace"}
	logFormats    = []string{"text", "json"}
	outputFormats = []string{"text", "yaml", "json"}
	orders        = []string{"first-seen", "sorted"}
)

func (c *Config) validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("%s must be one of %v, got %q", EnvLogLevel, logLevels, c.LogLevel)
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		return fmt.Errorf("%s must be one of %v, got %q", EnvLogFormat, logFormats, c.LogFormat)
	}
	if err := ValidateOutputFormat(c.OutputFormat); err != nil {
		return err
	}
	if !slices.Contains(orders, c.Order) {
		return fmt.Errorf("%s must be one of %v, got %q", EnvOrder, orders, c.Order)
	}

	return nil
}

// ValidateOutputFormat reports whether f names a known report format.
func ValidateOutputFormat(f string) error {
	if !slices.Contains(outputFormats, f) {
		return fmt.Errorf("output format must be one of %v, got %q", outputFormats, f)
	}

	return nil
}
