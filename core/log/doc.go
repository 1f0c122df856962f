// File: doc.go
// Title: Core Logging Package Documentation
// Description: Documents the log package which provides structured logging
//              with levels, contextual fields, and multiple output formats
//              for the mEX interpreter and CLI.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial package documentation

/*
Package log provides structured logging for mEX.

Loggers are immutable: the With* methods return derived loggers carrying
additional context (name, session ID, persistent fields) without
affecting the original. Output is formatted as JSON (default) or
human-readable text.

The interpreter pipeline logs at Debug level so that interactive use
stays quiet by default; the CLI raises verbosity with --verbose.

Usage:

	logger := log.GetDefault().WithName("mex-parser")
	logger.Debug("parse started", log.Fields{"length": len(input)})

	timer := logger.StartTimer("evaluate")
	defer timer.Stop()
*/
package log
