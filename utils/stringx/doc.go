// File: doc.go
// Title: String Utilities Package Documentation
// Description: Documents the stringx package which provides string helper
//              functions used across the mEX pipeline, configuration, and
//              command-line surfaces.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial package documentation

/*
Package stringx provides string utility functions that extend the Go
standard library.

The helpers concentrate on the small set of operations the mEX codebase
needs repeatedly:

  • Blank/empty checks for validation (IsBlank, IsNotBlank, IsEmpty)
  • Rune-safe truncation for log and error output (Truncate)
  • Configuration fallbacks (FirstNonBlank)
  • Source snippet normalization (CollapseWhitespace)
*/
package stringx
