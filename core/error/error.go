// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with contextual information
//              and metadata. Provides a structured error handling system
//              that maintains compatibility with Go's standard error
//              interface while adding codes, severity, and details.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with contextual errors

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Error represents a structured error with context, code, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	details   map[string]interface{}
	operation string
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(cause error, message string) *Error {
	if cause == nil {
		return nil
	}

	e := New(message)
	e.cause = cause

	// Inherit code and severity from a wrapped structured error
	var inner *Error
	if errors.As(cause, &inner) {
		e.code = inner.code
		e.severity = inner.severity
	}

	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(cause error, format string, args ...interface{}) *Error {
	return Wrap(cause, fmt.Sprintf(format, args...))
}

// WithCode sets the error code and derives severity from it
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity overrides the severity level
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation records the operation during which the error occurred
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the wrapped cause, enabling errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether the target matches this error by code
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.code == other.code
	}
	return false
}

// Message returns the error message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the severity level
func (e *Error) Severity() Severity {
	return e.severity
}

// Operation returns the operation during which the error occurred
func (e *Error) Operation() string {
	return e.operation
}

// Details returns the error details map
func (e *Error) Details() map[string]interface{} {
	return e.details
}

// Timestamp returns the time the error was created
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Cause returns the wrapped error, or nil
func (e *Error) Cause() error {
	return e.cause
}

// MarshalJSON serializes the error for structured log output
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code.String(),
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
	}
	if e.operation != "" {
		data["operation"] = e.operation
	}
	if len(e.details) > 0 {
		data["details"] = e.details
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	return json.Marshal(data)
}

// GetCode extracts the code from any error, returning CodeUnknown for
// non-structured errors
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity extracts the severity from any error, returning
// SeverityMedium for non-structured errors
func GetSeverity(err error) Severity {
	var e *Error
	if errors.As(err, &e) {
		return e.severity
	}
	return SeverityMedium
}
