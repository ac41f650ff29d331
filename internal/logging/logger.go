package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level     string `yaml:"level" json:"level"`
	Format    string `yaml:"format" json:"format"`       // text, json or logfmt
	Timestamp bool   `yaml:"timestamp" json:"timestamp"` // whether to include timestamps
	Caller    bool   `yaml:"caller" json:"caller"`
}

// DefaultConfig returns a default logging configuration. Warnings only, so
// diagnostics stay out of the way of the prompts.
func DefaultConfig() LoggingConfig {
	return LoggingConfig{
		Level:     "warn",
		Format:    "text",
		Timestamp: false,
	}
}

// DevelopmentConfig returns a configuration suited to debugging
func DevelopmentConfig() LoggingConfig {
	return LoggingConfig{
		Level:     "debug",
		Format:    "text",
		Timestamp: true,
		Caller:    true,
	}
}

// Validate checks the level and format values
func (c LoggingConfig) Validate() error {
	if _, err := log.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Level)
	}
	if _, err := parseFormatter(c.Format); err != nil {
		return err
	}
	return nil
}

// New creates a logger writing to w according to cfg
func New(cfg LoggingConfig, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	formatter, err := parseFormatter(cfg.Format)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: cfg.Timestamp,
		ReportCaller:    cfg.Caller,
		TimeFormat:      time.RFC3339,
		Prefix:          "calc",
	}), nil
}

func parseFormatter(format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return 0, fmt.Errorf("unknown log format: %s", format)
	}
}
