package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"subrip/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Defaults.OnError != "pass" {
		t.Fatalf("unexpected on_error default: %q", cfg.Defaults.OnError)
	}
	if cfg.Defaults.Encoding != "" {
		t.Fatalf("expected empty encoding default, got %q", cfg.Defaults.Encoding)
	}
	if cfg.Defaults.EOL != "" {
		t.Fatalf("expected empty eol default, got %q", cfg.Defaults.EOL)
	}
	if cfg.Logging.Format != "text" {
		t.Fatalf("unexpected log format default: %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected log level default: %q", cfg.Logging.Level)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subrip.toml")

	custom := config.Config{
		Defaults: config.Defaults{
			Encoding: "latin1",
			EOL:      "CRLF",
			OnError:  "RAISE",
		},
		Logging: config.Logging{
			Format: "json",
			Level:  "debug",
		},
	}
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Defaults.Encoding != "latin1" {
		t.Fatalf("expected encoding from file, got %q", cfg.Defaults.Encoding)
	}
	if cfg.Defaults.EOL != "crlf" {
		t.Fatalf("expected normalized eol, got %q", cfg.Defaults.EOL)
	}
	if cfg.Defaults.OnError != "raise" {
		t.Fatalf("expected normalized on_error, got %q", cfg.Defaults.OnError)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected log format from file, got %q", cfg.Logging.Format)
	}
}

func TestLoadMissingExplicitPathKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists to be false for absent file")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Defaults.OnError != "pass" {
		t.Fatalf("unexpected on_error: %q", cfg.Defaults.OnError)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subrip.toml")

	if err := os.WriteFile(configPath, []byte("[defaults]\non_error = \"explode\"\n"), 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for invalid on_error")
	}

	if err := os.WriteFile(configPath, []byte("[defaults]\neol = \"mixed\"\n"), 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for invalid eol")
	}

	if err := os.WriteFile(configPath, []byte("[logging]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for invalid log format")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Defaults.OnError != "pass" {
		t.Fatalf("sample on_error should be pass, got %q", cfg.Defaults.OnError)
	}
	if cfg.Logging.Format != "text" {
		t.Fatalf("sample log format should be text, got %q", cfg.Logging.Format)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Defaults.OnError = "explode"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid on_error")
	}

	cfg = config.Default()
	cfg.Defaults.EOL = "lfcr"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid eol")
	}

	cfg = config.Default()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}
