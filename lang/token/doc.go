// File: doc.go
// Title: mEX Token Package Documentation
// Description: Documents the token package which defines the lexical
//              vocabulary shared by the mEX lexer and parser.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial token package

/*
Package token defines the lexical vocabulary of mEX.

Tokens are immutable value objects created by the lexer and consumed by
the parser. Each token carries its type, the literal source text, and
the position it was read from. The Type.String rendering doubles as the
diagnostic vocabulary of the parser: operator types render as their
glyph ("=", ";"), named types as their uppercase name ("IDENT", "INT").
*/
package token
