// File: doc.go
// Title: mEX Language Package Documentation
// Description: Package documentation for the high-level mEX engine.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial engine implementation

/*
Package lang provides the high-level mEX engine.

The Engine wires the pipeline together: source text is lexed and
parsed by lang/parser, the resulting lang/ast tree is reduced by
lang/evaluator, and the outcome is returned as a Result carrying a
unique run ID, the parsed program, the runtime value, any syntax
errors, and timing information.

Each call creates a fresh lexer and parser, so one Engine instance
serves concurrent callers. Syntax errors never abort the pipeline;
the Result keeps every statement the parser could recover together
with the full error list.

Usage:

	engine := lang.NewEngine()
	result, err := engine.Run("5 * 2 + 10;")
	if err != nil {
		// empty input, oversized input, or syntax errors
	}
	fmt.Println(result.Rendering()) // "20"
*/
package lang
