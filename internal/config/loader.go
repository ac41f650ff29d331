package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed config.example.yaml
var embeddedConfigSample string

// Loader handles configuration loading and saving
type Loader struct {
	// Config file paths in priority order
	searchPaths []string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		searchPaths: getDefaultSearchPaths(),
	}
}

// Load loads configuration from file and environment variables.
// A missing config file is not an error.
func (l *Loader) Load(explicitPath string) (*Config, error) {
	cfg := NewDefaultConfig()

	configPath := l.FindConfigFile(explicitPath)
	if configPath != "" {
		if err := l.loadFromFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	}

	applyEnvironmentOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to file
func (l *Loader) Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FindConfigFile returns explicitPath if set, otherwise the first search
// path holding a file. It returns "" when no config file exists.
func (l *Loader) FindConfigFile(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}

	for _, path := range l.searchPaths {
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// GetConfigPath returns the path where config would be loaded from
func (l *Loader) GetConfigPath(explicitPath string) string {
	if path := l.FindConfigFile(explicitPath); path != "" {
		return path
	}
	return DefaultConfigPath()
}

// DefaultConfigPath returns the per-user config file location
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "calc", "config.yaml")
}

// loadFromFile decodes the YAML file at path over cfg, so keys absent from
// the file keep their current values.
func (l *Loader) loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// getDefaultSearchPaths returns the default configuration search paths
func getDefaultSearchPaths() []string {
	paths := []string{}

	if envPath := os.Getenv("CALC_CONFIG_PATH"); envPath != "" {
		paths = append(paths, envPath)
	}

	// Current directory - prioritized first
	paths = append(paths, "calc.yaml")

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", "calc", "config.yaml"))
	}

	return paths
}

// applyEnvironmentOverrides applies environment variables over file values
func applyEnvironmentOverrides(cfg *Config) {
	if level := os.Getenv("CALC_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if os.Getenv("CALC_CORRECT_MULTIPLY") != "" {
		cfg.Calculator.CorrectMultiply = getEnvBool("CALC_CORRECT_MULTIPLY", cfg.Calculator.CorrectMultiply)
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.UI.Color = false
	}
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CreateSampleConfig writes the commented sample configuration to path
func CreateSampleConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(embeddedConfigSample), 0644)
}
