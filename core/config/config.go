// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the main Config type and core functionality for
//              loading, parsing, and accessing configuration data from TOML
//              and YAML files with environment variable support.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mexerror "github.com/msto63/mEX/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto auto-detects the format from the file extension.
	// The zero value, so an unset LoadOptions.Format auto-detects.
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: "MEX")
	Defaults  map[string]interface{} // Default values
}

// New creates an in-memory configuration from the given defaults
func New(defaults map[string]interface{}) *Config {
	data := make(map[string]interface{})
	for k, v := range defaults {
		data[k] = v
	}
	return &Config{
		data:      data,
		envPrefix: "MEX",
	}
}

// Load reads a configuration file and returns a Config instance.
// Missing files are not an error when defaults are provided; the
// defaults then make up the whole configuration.
func Load(path string, opts LoadOptions) (*Config, error) {
	if opts.EnvPrefix == "" {
		opts.EnvPrefix = "MEX"
	}

	cfg := &Config{
		data:      make(map[string]interface{}),
		filePath:  path,
		format:    opts.Format,
		envPrefix: opts.EnvPrefix,
	}

	for k, v := range opts.Defaults {
		cfg.data[k] = v
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && opts.Defaults != nil {
			return cfg, nil
		}
		return nil, mexerror.Wrap(err, "configuration file not readable").
			WithCode(mexerror.CodeConfigError).
			WithDetail("path", path)
	}

	format := opts.Format
	if format == FormatAuto {
		format = detectFormat(path)
	}

	fileData := make(map[string]interface{})
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &fileData); err != nil {
			return nil, mexerror.Wrap(err, "invalid YAML configuration").
				WithCode(mexerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	default:
		if err := toml.Unmarshal(content, &fileData); err != nil {
			return nil, mexerror.Wrap(err, "invalid TOML configuration").
				WithCode(mexerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	}

	mergeMaps(cfg.data, fileData)
	cfg.format = format

	return cfg, nil
}

// detectFormat determines the file format from the extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// mergeMaps deep-merges src into dst, overwriting scalar values
func mergeMaps(dst, src map[string]interface{}) {
	for k, v := range src {
		if srcMap, ok := v.(map[string]interface{}); ok {
			if dstMap, ok := dst[k].(map[string]interface{}); ok {
				mergeMaps(dstMap, srcMap)
				continue
			}
		}
		dst[k] = v
	}
}

// Get returns the raw value at the given dot-notation key.
// Environment variables take precedence: the key "repl.prompt" is
// overridden by MEX_REPL_PROMPT when set.
func (c *Config) Get(key string) (interface{}, bool) {
	if env, ok := c.lookupEnv(key); ok {
		return env, true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := strings.Split(key, ".")
	var current interface{} = c.data

	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// lookupEnv checks for an environment variable override of the key
func (c *Config) lookupEnv(key string) (string, bool) {
	envKey := c.envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.LookupEnv(envKey)
}

// GetString returns the string value at the key, or the fallback
func (c *Config) GetString(key, fallback string) string {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}

	switch v := value.(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns the integer value at the key, or the fallback
func (c *Config) GetInt(key string, fallback int) int {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}

	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetBool returns the boolean value at the key, or the fallback
func (c *Config) GetBool(key string, fallback bool) bool {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetDuration returns the duration value at the key, or the fallback
func (c *Config) GetDuration(key string, fallback time.Duration) time.Duration {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}

	switch v := value.(type) {
	case string:
		if parsed, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	case int:
		return time.Duration(v) * time.Second
	case int64:
		return time.Duration(v) * time.Second
	}
	return fallback
}

// Set stores a value at the given dot-notation key
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	parts := strings.Split(key, ".")
	current := c.data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// FileFormat returns the detected configuration format
func (c *Config) FileFormat() Format {
	return c.format
}
