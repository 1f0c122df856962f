// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements essential string operations that extend the Go
//              standard library. Focuses on Unicode safety and developer
//              ergonomics for the string handling needs of the mEX
//              pipeline and CLI.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains at least one non-whitespace rune.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate shortens a string to at most maxLen runes, appending "..." when
// content was cut off. Rune-safe: never splits a multi-byte character.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// FirstNonBlank returns the first argument that is not blank, or the empty
// string when all arguments are blank. Useful for configuration fallbacks.
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}

// CollapseWhitespace replaces runs of whitespace with a single space and
// trims the result. Used for normalizing source snippets in log output.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
