// File: doc.go
// Title: mEX Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree nodes and structures for
//              representing parsed mEX programs. Provides visitor patterns
//              and tree inspection utilities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for mEX programs.

Two closed node families exist: statements (LetStatement, ReturnStatement,
ExpressionStatement) and expressions (Identifier, IntegerLiteral,
BooleanLiteral, PrefixExpression, InfixExpression). The families are
sealed with unexported marker methods so that every consumer switches
exhaustively over the known variants.

Every node carries its originating token for diagnostics and renders to
source-like text with expressions fully parenthesized, e.g. a prefix
negation inside a product renders as ((-a) * b). This canonical rendering
is the basis for structural assertions in tests.
*/
package ast
