package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/common-creation/calc/internal/calculator"
	"github.com/common-creation/calc/internal/logging"
)

// Config represents the complete configuration for calc
type Config struct {
	// Calculator behavior
	Calculator CalculatorConfig `yaml:"calculator" json:"calculator"`

	// UI configuration
	UI UIConfig `yaml:"ui" json:"ui"`

	// Logging configuration
	Logging logging.LoggingConfig `yaml:"logging" json:"logging"`
}

// CalculatorConfig controls operator evaluation
type CalculatorConfig struct {
	// Make "*" multiply instead of dividing
	CorrectMultiply bool `yaml:"correct_multiply" json:"correct_multiply"`
}

// UIConfig contains UI related configuration
type UIConfig struct {
	// Enable/disable colored output
	Color bool `yaml:"color" json:"color"`
}

// NewDefaultConfig creates a new configuration with default values
func NewDefaultConfig() *Config {
	cfg := &Config{
		Calculator: CalculatorConfig{
			CorrectMultiply: getEnvBool("CALC_CORRECT_MULTIPLY", false),
		},
		UI: UIConfig{
			Color: os.Getenv("NO_COLOR") == "",
		},
		Logging: logging.DefaultConfig(),
	}
	if level := os.Getenv("CALC_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("Logging configuration error: %w", err)
	}
	return nil
}

// CalculatorOptions converts the calculator section into evaluation options
func (c *Config) CalculatorOptions() calculator.Options {
	return calculator.Options{CorrectMultiply: c.Calculator.CorrectMultiply}
}

// Helper functions

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
