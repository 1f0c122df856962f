// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across mEX. Codes enable structured error
//              handling in the CLI, the engine facade, and any host that
//              embeds the interpreter pipeline.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for mEX
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Language pipeline
	CodeSyntax       Code = "MEX_SYNTAX"
	CodeEval         Code = "MEX_EVAL"
	CodeInputTooLong Code = "MEX_INPUT_TOO_LONG"
	CodeEmptyInput   Code = "MEX_EMPTY_INPUT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsLanguageCode returns true for codes produced by the lexer, parser,
// or evaluator rather than by the surrounding infrastructure
func (c Code) IsLanguageCode() bool {
	switch c {
	case CodeSyntax, CodeEval, CodeInputTooLong, CodeEmptyInput:
		return true
	default:
		return false
	}
}

// IsValid returns true if the code is one of the defined constants
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeSyntax, CodeEval, CodeInputTooLong, CodeEmptyInput,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange:
		return true
	default:
		return false
	}
}
