// File: doc.go
// Title: Core Error Package Documentation
// Description: Documents the error package which provides structured error
//              handling with codes, severity levels, and contextual details
//              for the mEX interpreter and its host surfaces.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial package documentation

/*
Package error provides structured error handling for mEX.

Errors carry a Code for classification, a Severity for triage, and an
optional details map. The type is fully compatible with the standard
library: it implements error, supports errors.Is/errors.As via Unwrap,
and serializes to JSON for structured log output.

Note that the interpreter core itself never returns these errors for
syntax or evaluation anomalies — the parser accumulates plain diagnostic
strings and the evaluator returns null values by design. This package is
used at the engine facade and CLI boundary, where those anomalies are
wrapped for hosts that want structured reporting.

Usage:

	err := mexerror.New("source file not readable").
		WithCode(mexerror.CodeInvalidInput).
		WithOperation("run").
		WithDetail("path", path)
*/
package error
