// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for error classification. Severity
//              drives log level selection and lets hosts decide which
//              failures require operator attention.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with severity levels

package error

import "strings"

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, a syntax error in an interactive session
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unreadable config file (defaults apply), evaluation type errors
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: unreadable source file in run mode, invalid configuration values
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	// Examples: internal invariant violations in the pipeline
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// ParseSeverity parses a string into a severity level
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SeverityLow, true
	case "medium":
		return SeverityMedium, true
	case "high":
		return SeverityHigh, true
	case "critical":
		return SeverityCritical, true
	default:
		return SeverityMedium, false
	}
}

// GetSeverityFromCode determines an appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeInvalidConfig, CodeMissingConfig:
		return SeverityHigh
	case CodeEval, CodeConfigError, CodeValidationFailed:
		return SeverityMedium
	case CodeSyntax, CodeInputTooLong, CodeEmptyInput, CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
