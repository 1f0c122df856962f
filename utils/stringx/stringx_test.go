// File: stringx_test.go
// Title: String Utilities Unit Tests
// Description: Tests for the stringx helper functions covering blank
//              detection, truncation, and fallback selection including
//              Unicode edge cases.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test suite

package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Empty string", "", true},
		{"Spaces only", "   ", true},
		{"Tabs and newlines", "\t\n\r ", true},
		{"Non-blank", "mex", false},
		{"Surrounded by spaces", "  x  ", false},
		{"Unicode whitespace", "  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := IsNotBlank(tt.input); got == tt.want {
				t.Errorf("IsNotBlank(%q) = %v, want %v", tt.input, got, !tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"Shorter than limit", "let x = 5;", 20, "let x = 5;"},
		{"Exactly at limit", "abcde", 5, "abcde"},
		{"Truncated with ellipsis", "let result = 10 * 5;", 10, "let res..."},
		{"Tiny limit", "abcdef", 2, "ab"},
		{"Zero limit", "abc", 0, ""},
		{"Unicode safe", "äöüäöüäöü", 6, "äöü..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "fallback", "other"); got != "fallback" {
		t.Errorf("Expected 'fallback', got %q", got)
	}
	if got := FirstNonBlank("", "   "); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
	if got := FirstNonBlank("first", "second"); got != "first" {
		t.Errorf("Expected 'first', got %q", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  let   x =\n\t5; "); got != "let x = 5;" {
		t.Errorf("Unexpected result: %q", got)
	}
}
