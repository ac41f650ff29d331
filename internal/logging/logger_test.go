package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(LoggingConfig{Level: "warn", Format: "text"}, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Errorf("Debug message should not appear with WARN level, got: %s", out)
	}
	if strings.Contains(out, "info message") {
		t.Errorf("Info message should not appear with WARN level, got: %s", out)
	}
	if !strings.Contains(out, "warn message") {
		t.Errorf("Warn message should appear with WARN level, got: %s", out)
	}
}

func TestNew_TextFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(LoggingConfig{Level: "debug"}, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Debug("evaluating", "operator", "+", "num1", 6)

	out := buf.String()
	if !strings.Contains(out, "operator=+") {
		t.Errorf("Expected log to contain 'operator=+', got: %s", out)
	}
	if !strings.Contains(out, "num1=6") {
		t.Errorf("Expected log to contain 'num1=6', got: %s", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(LoggingConfig{Level: "info", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("json test", "key", "value")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v, output: %s", err, buf.String())
	}
	if entry["msg"] != "json test" {
		t.Errorf("Expected msg 'json test', got: %v", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("Expected key 'value', got: %v", entry["key"])
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(LoggingConfig{Level: "loud"}, &bytes.Buffer{}); err == nil {
		t.Error("Expected error for invalid level")
	}
	if _, err := New(LoggingConfig{Level: "info", Format: "xml"}, &bytes.Buffer{}); err == nil {
		t.Error("Expected error for invalid format")
	}
}

func TestLoggingConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
	if err := DevelopmentConfig().Validate(); err != nil {
		t.Errorf("Development config should be valid: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Format = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unknown format")
	}
}
