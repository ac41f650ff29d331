package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/common-creation/calc/internal/logging"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CALC_LOG_LEVEL", "CALC_CORRECT_MULTIPLY", "CALC_CONFIG_PATH", "NO_COLOR"} {
		t.Setenv(key, "")
	}
}

func TestNewDefaultConfig(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		clearEnv(t)

		cfg := NewDefaultConfig()

		assert.False(t, cfg.Calculator.CorrectMultiply)
		assert.True(t, cfg.UI.Color)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, "text", cfg.Logging.Format)
		assert.False(t, cfg.Logging.Timestamp)
	})

	t.Run("environment overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CALC_LOG_LEVEL", "debug")
		t.Setenv("CALC_CORRECT_MULTIPLY", "true")
		t.Setenv("NO_COLOR", "1")

		cfg := NewDefaultConfig()

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.True(t, cfg.Calculator.CorrectMultiply)
		assert.False(t, cfg.UI.Color)
	})

	t.Run("unparseable bool keeps default", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CALC_CORRECT_MULTIPLY", "sometimes")

		assert.False(t, NewDefaultConfig().Calculator.CorrectMultiply)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := &Config{
			Logging: logging.LoggingConfig{
				Level:  "info",
				Format: "text",
			},
		}

		assert.NoError(t, cfg.Validate())
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Logging.Level = "chatty"

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestCalculatorOptions(t *testing.T) {
	cfg := &Config{Calculator: CalculatorConfig{CorrectMultiply: true}}
	assert.True(t, cfg.CalculatorOptions().CorrectMultiply)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("load from explicit path", func(t *testing.T) {
		clearEnv(t)
		configPath := filepath.Join(t.TempDir(), "calc.yaml")
		content := `
calculator:
  correct_multiply: true
logging:
  level: debug
`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

		cfg, err := NewLoader().Load(configPath)
		require.NoError(t, err)

		assert.True(t, cfg.Calculator.CorrectMultiply)
		assert.Equal(t, "debug", cfg.Logging.Level)
		// untouched keys keep defaults
		assert.Equal(t, "text", cfg.Logging.Format)
		assert.True(t, cfg.UI.Color)
	})

	t.Run("missing file uses defaults", func(t *testing.T) {
		clearEnv(t)
		loader := &Loader{searchPaths: []string{filepath.Join(t.TempDir(), "absent.yaml")}}

		cfg, err := loader.Load("")
		require.NoError(t, err)
		assert.Equal(t, NewDefaultConfig(), cfg)
	})

	t.Run("search path", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		found := filepath.Join(dir, "found.yaml")
		require.NoError(t, os.WriteFile(found, []byte("ui:\n  color: false\n"), 0644))

		loader := &Loader{searchPaths: []string{filepath.Join(dir, "absent.yaml"), found}}
		cfg, err := loader.Load("")
		require.NoError(t, err)
		assert.False(t, cfg.UI.Color)
		assert.Equal(t, found, loader.GetConfigPath(""))
	})

	t.Run("environment wins over file", func(t *testing.T) {
		clearEnv(t)
		configPath := filepath.Join(t.TempDir(), "calc.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  level: info\n"), 0644))
		t.Setenv("CALC_LOG_LEVEL", "error")

		cfg, err := NewLoader().Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Logging.Level)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		clearEnv(t)
		configPath := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("logging: [unclosed"), 0644))

		_, err := NewLoader().Load(configPath)
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		clearEnv(t)
		configPath := filepath.Join(t.TempDir(), "calc.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  format: xml\n"), 0644))

		_, err := NewLoader().Load(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	require.NoError(t, os.WriteFile(first, []byte("{}\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("{}\n"), 0644))

	loader := &Loader{searchPaths: []string{filepath.Join(dir, "absent.yaml"), first, second}}
	assert.Equal(t, first, loader.FindConfigFile(""))
	assert.Equal(t, "/explicit.yaml", loader.FindConfigFile("/explicit.yaml"))

	empty := &Loader{searchPaths: []string{filepath.Join(dir, "absent.yaml")}}
	assert.Equal(t, "", empty.FindConfigFile(""))
	assert.Equal(t, DefaultConfigPath(), empty.GetConfigPath(""))
}

func TestGetDefaultSearchPaths(t *testing.T) {
	t.Run("without env var", func(t *testing.T) {
		clearEnv(t)
		assert.Contains(t, getDefaultSearchPaths(), "calc.yaml")
	})

	t.Run("with env var", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CALC_CONFIG_PATH", "/custom/calc.yaml")

		paths := getDefaultSearchPaths()
		require.NotEmpty(t, paths)
		assert.Equal(t, "/custom/calc.yaml", paths[0])
	})
}

func TestSaveAndSample(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	t.Run("save round trip", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "saved.yaml")
		cfg := NewDefaultConfig()
		cfg.Calculator.CorrectMultiply = true

		require.NoError(t, NewLoader().Save(path, cfg))

		loaded, err := NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, loaded)
	})

	t.Run("sample config is valid", func(t *testing.T) {
		path := filepath.Join(dir, "sample.yaml")
		require.NoError(t, CreateSampleConfig(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var cfg Config
		require.NoError(t, yaml.Unmarshal(data, &cfg))
		assert.NoError(t, cfg.Validate())
		assert.Equal(t, "warn", cfg.Logging.Level)
	})
}
