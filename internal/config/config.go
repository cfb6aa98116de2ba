// Package config defines harness configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading errors wrap ErrLoadConfig; validation errors wrap ErrInvalidConfig.
package config

import (
	"fmt"
	"runtime"
	"strings"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// WorkerCount sets the number of validation workers.
	WorkerCount int `koanf:"worker_count"`

	// QueueSize bounds the in-memory record queue.
	QueueSize int `koanf:"queue_size"`

	// DedupeSize sets the size of the record id cache.
	DedupeSize int `koanf:"dedupe_size"`

	// StorePath is the SQLite database holding outcomes. Empty keeps
	// outcomes in memory only.
	StorePath string `koanf:"store_path"`

	// StopOnFirstFailure ends a validation run at the first record that
	// fails to round-trip.
	StopOnFirstFailure bool `koanf:"stop_on_first_failure"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		LogFormat:   "text",
		WorkerCount: runtime.NumCPU(),
		QueueSize:   10_000,
		DedupeSize:  100_000,
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.WorkerCount <= 0:
		return fmt.Errorf("%w: worker_count must be positive, got %d", ErrInvalidConfig, c.WorkerCount)
	case c.QueueSize <= 0:
		return fmt.Errorf("%w: queue_size must be positive, got %d", ErrInvalidConfig, c.QueueSize)
	case c.DedupeSize <= 0:
		return fmt.Errorf("%w: dedupe_size must be positive, got %d", ErrInvalidConfig, c.DedupeSize)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
