// Package config loads CLI configuration from environment variables.
// All variables use the MATHCONTENT_ prefix; command-line flags override them.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Output formats.
const (
	OutputView = "view"
	OutputJSON = "json"
)

// Config holds all application configuration.
type Config struct {
	// CatalogPath points at a topic catalog YAML file. Empty selects the
	// built-in catalog.
	CatalogPath string

	// Output selects how results are printed: "view" or "json".
	Output string

	Log LogConfig

	// BatchConcurrency bounds concurrent pipeline runs in batch mode.
	BatchConcurrency int
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Output: OutputView,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		BatchConcurrency: 4,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if p := os.Getenv("MATHCONTENT_CATALOG"); p != "" {
		cfg.CatalogPath = p
	}
	if o := os.Getenv("MATHCONTENT_OUTPUT"); o != "" {
		cfg.Output = strings.ToLower(o)
	}
	if l := os.Getenv("MATHCONTENT_LOG_LEVEL"); l != "" {
		cfg.Log.Level = strings.ToLower(l)
	}
	if f := os.Getenv("MATHCONTENT_LOG_FORMAT"); f != "" {
		cfg.Log.Format = strings.ToLower(f)
	}
	if c := os.Getenv("MATHCONTENT_BATCH_CONCURRENCY"); c != "" {
		n, err := strconv.Atoi(c)
		if err != nil {
			return Config{}, fmt.Errorf("MATHCONTENT_BATCH_CONCURRENCY: invalid integer %q", c)
		}
		cfg.BatchConcurrency = n
	}

	return cfg, nil
}

// Validate checks that enumerated settings hold known values.
func (c Config) Validate() error {
	switch c.Output {
	case OutputView, OutputJSON:
	default:
		return fmt.Errorf("unknown output format: %q (want %q or %q)", c.Output, OutputView, OutputJSON)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q (want \"text\" or \"json\")", c.Log.Format)
	}
	if c.BatchConcurrency < 0 {
		return fmt.Errorf("batch concurrency must be >= 0, got %d", c.BatchConcurrency)
	}
	return nil
}

// NewLogger builds a slog.Logger writing to w per the log settings.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level: %q", s)
	}
	return level, nil
}
