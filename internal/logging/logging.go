// Package logging sets up logrus for the konig command and carries the
// logger through a context.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

type loggerContextKey string

const loggerContextKeyVal = loggerContextKey("logrus.FieldLogger")

// New returns a logger writing to w at the named level. format is "text"
// or "json"; text output is colored only when w is a terminal that allows it.
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	switch format {
	case "", "text":
		colored := CheckIfColorable(w)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:    !colored,
			ForceColors:      colored,
			DisableTimestamp: !colored,
			FullTimestamp:    true,
		})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("log format must be text or json, got %q", format)
	}

	return logger, nil
}

// FromContext returns the logger stored in ctx, or the standard logger.
func FromContext(ctx context.Context) logrus.FieldLogger {
	val := ctx.Value(loggerContextKeyVal)
	if val != nil {
		if logger, ok := val.(logrus.FieldLogger); ok {
			return logger
		}
	}

	return logrus.StandardLogger()
}

// WithLogger adds a value to the context for the logger.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerContextKeyVal, logger)
}

// CheckIfColorable reports whether w is a terminal and the environment does
// not disable colors.
func CheckIfColorable(w io.Writer) bool {
	if !CheckIfTerminal(w) {
		return false
	}

	// https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if t, ok := os.LookupEnv("TERM"); ok {
		switch t {
		case "dumb", "unknown":
			return false
		}
	}

	return true
}

// CheckIfTerminal reports whether w is a terminal file.
func CheckIfTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return isatty.IsTerminal(v.Fd()) || isatty.IsCygwinTerminal(v.Fd())
	default:
		return false
	}
}
