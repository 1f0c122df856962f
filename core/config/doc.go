// File: doc.go
// Title: Core Configuration Package Documentation
// Description: Documents the config package which provides TOML/YAML
//              configuration loading with environment variable overrides
//              for the mEX command-line tools.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial package documentation

/*
Package config provides configuration management for mEX.

Configuration files may be TOML (default) or YAML; the format is
auto-detected from the file extension. Values are addressed with dot
notation ("repl.prompt") and every key can be overridden through an
environment variable derived from it (MEX_REPL_PROMPT).

A missing configuration file is not an error when defaults are supplied,
so the CLI works out of the box without any config at all.

Usage:

	cfg, err := config.Load("configs/config.toml", config.LoadOptions{
		Format: config.FormatAuto,
		Defaults: map[string]interface{}{
			"repl": map[string]interface{}{"prompt": ">> "},
		},
	})
	prompt := cfg.GetString("repl.prompt", ">> ")
*/
package config
