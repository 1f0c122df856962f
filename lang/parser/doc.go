// File: doc.go
// Title: mEX Parser Package Documentation
// Description: Package documentation for the mEX lexer and parser.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial parser implementation

/*
Package parser implements lexical and syntactic analysis for mEX.

The Lexer converts source text into a stream of tokens on demand, one
token per NextToken call, with line and column positions for error
reporting. After the input is exhausted it keeps returning EOF.

The Parser is a Pratt parser (top-down operator precedence). Each token
type that can start an expression has a prefix parse function and each
binary operator has an infix parse function; precedence climbing makes
all binary operators left-associative with the usual arithmetic and
comparison binding order (==/!= weakest, then </>, then +/-, then * and
/, with unary !/- binding strongest).

Parsing never fails hard: ParseProgram always returns a program with
every statement that could be recovered, and Errors() lists the syntax
errors in encounter order. A malformed statement is abandoned at the
offending token and parsing resumes with the next token.

Usage:

	p := parser.New("let x = 5 + 5;")
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		// handle syntax errors
	}
*/
package parser
