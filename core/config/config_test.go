// File: config_test.go
// Title: Core Configuration Unit Tests
// Description: Tests for configuration loading covering TOML and YAML
//              parsing, dot-notation access, defaults, type coercion,
//              and environment variable overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test suite

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `
[repl]
prompt = "mex> "
max_input_length = 2048

[log]
level = "debug"
format = "text"
`)

	cfg, err := Load(path, LoadOptions{Format: FormatAuto})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cfg.GetString("repl.prompt", ">> "); got != "mex> " {
		t.Errorf("Expected prompt 'mex> ', got %q", got)
	}
	if got := cfg.GetInt("repl.max_input_length", 4096); got != 2048 {
		t.Errorf("Expected max_input_length 2048, got %d", got)
	}
	if got := cfg.GetString("log.level", "info"); got != "debug" {
		t.Errorf("Expected log level debug, got %q", got)
	}
	if cfg.FileFormat() != FormatTOML {
		t.Errorf("Expected TOML format, got %v", cfg.FileFormat())
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
repl:
  prompt: "yaml> "
  history: true
log:
  level: warn
`)

	cfg, err := Load(path, LoadOptions{Format: FormatAuto})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cfg.GetString("repl.prompt", ">> "); got != "yaml> " {
		t.Errorf("Expected prompt 'yaml> ', got %q", got)
	}
	if !cfg.GetBool("repl.history", false) {
		t.Error("Expected repl.history true")
	}
	if cfg.FileFormat() != FormatYAML {
		t.Errorf("Expected YAML format, got %v", cfg.FileFormat())
	}
}

func TestLoadYAMLWithoutExplicitFormat(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
log:
  level: debug
`)

	// Zero-value options must auto-detect from the extension
	cfg, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cfg.GetString("log.level", "info"); got != "debug" {
		t.Errorf("Expected log level debug, got %q", got)
	}
	if cfg.FileFormat() != FormatYAML {
		t.Errorf("Expected YAML format, got %v", cfg.FileFormat())
	}
}

func TestMissingFileWithDefaults(t *testing.T) {
	cfg, err := Load("/nonexistent/config.toml", LoadOptions{
		Defaults: map[string]interface{}{
			"repl": map[string]interface{}{"prompt": "default> "},
		},
	})
	if err != nil {
		t.Fatalf("Missing file with defaults should not fail: %v", err)
	}
	if got := cfg.GetString("repl.prompt", ""); got != "default> " {
		t.Errorf("Expected default prompt, got %q", got)
	}
}

func TestMissingFileWithoutDefaults(t *testing.T) {
	if _, err := Load("/nonexistent/config.toml", LoadOptions{}); err == nil {
		t.Error("Expected error for missing file without defaults")
	}
}

func TestInvalidTOML(t *testing.T) {
	path := writeTempConfig(t, "broken.toml", "[repl\nprompt=")
	if _, err := Load(path, LoadOptions{Format: FormatAuto}); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestDefaultsMergedUnderFile(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `
[repl]
prompt = "file> "
`)

	cfg, err := Load(path, LoadOptions{
		Defaults: map[string]interface{}{
			"repl": map[string]interface{}{
				"prompt":  "default> ",
				"history": true,
			},
		},
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// File value wins, default survives for keys the file omits
	if got := cfg.GetString("repl.prompt", ""); got != "file> " {
		t.Errorf("Expected file prompt to win, got %q", got)
	}
	if !cfg.GetBool("repl.history", false) {
		t.Error("Expected default repl.history to survive merge")
	}
}

func TestEnvOverride(t *testing.T) {
	cfg := New(map[string]interface{}{
		"repl": map[string]interface{}{"prompt": "config> "},
	})

	t.Setenv("MEX_REPL_PROMPT", "env> ")

	if got := cfg.GetString("repl.prompt", ""); got != "env> " {
		t.Errorf("Expected env override 'env> ', got %q", got)
	}
}

func TestTypeCoercion(t *testing.T) {
	cfg := New(map[string]interface{}{
		"timeout":  "5s",
		"count":    "12",
		"verbose":  "true",
		"interval": 30,
	})

	if got := cfg.GetDuration("timeout", time.Second); got != 5*time.Second {
		t.Errorf("Expected 5s, got %v", got)
	}
	if got := cfg.GetInt("count", 0); got != 12 {
		t.Errorf("Expected 12, got %d", got)
	}
	if !cfg.GetBool("verbose", false) {
		t.Error("Expected verbose true")
	}
	if got := cfg.GetDuration("interval", 0); got != 30*time.Second {
		t.Errorf("Expected bare ints to read as seconds, got %v", got)
	}
}

func TestSet(t *testing.T) {
	cfg := New(nil)
	cfg.Set("tui.colors.primary", "#7C3AED")

	if got := cfg.GetString("tui.colors.primary", ""); got != "#7C3AED" {
		t.Errorf("Expected nested set value, got %q", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	cfg := New(nil)
	if _, ok := cfg.Get("does.not.exist"); ok {
		t.Error("Expected missing key to report !ok")
	}
	if got := cfg.GetString("does.not.exist", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %q", got)
	}
}
