// File: token.go
// Title: mEX Token Definitions
// Description: Defines the token types produced by the mEX lexer and the
//              keyword table used to distinguish identifiers from reserved
//              words. Token type names render exactly as they appear in
//              parser diagnostics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial token definitions

package token

// Type represents the type of a lexical token
type Type int

const (
	// Special tokens
	EOF Type = iota
	ILLEGAL

	// Identifiers and literals
	IDENT // x, foobar, result
	INT   // 5, 10, 1234

	// Operators
	ASSIGN   // =
	PLUS     // +
	MINUS    // -
	BANG     // !
	ASTERISK // *
	SLASH    // /
	LT       // <
	GT       // >
	EQ       // ==
	NOTEQ    // !=

	// Delimiters
	COMMA     // ,
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }

	// Keywords
	LET
	RETURN
	TRUE
	FALSE
	FUNCTION
	IF
	ELSE
)

// String returns the diagnostic rendering of the token type. Operator
// and delimiter types render as their glyph because parser error
// messages embed these strings verbatim.
func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ILLEGAL"
	case IDENT:
		return "IDENT"
	case INT:
		return "INT"
	case ASSIGN:
		return "="
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case BANG:
		return "!"
	case ASTERISK:
		return "*"
	case SLASH:
		return "/"
	case LT:
		return "<"
	case GT:
		return ">"
	case EQ:
		return "=="
	case NOTEQ:
		return "!="
	case COMMA:
		return ","
	case SEMICOLON:
		return ";"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case LBRACE:
		return "{"
	case RBRACE:
		return "}"
	case LET:
		return "LET"
	case RETURN:
		return "RETURN"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case FUNCTION:
		return "FUNCTION"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type    Type   // Token type
	Literal string // Token text
	Line    int    // Line number (1-based)
	Column  int    // Column number (1-based)
}

// Keywords map for identifier lookup. The fn/if/else keywords are
// reserved for future language extensions; the parser has no rules
// for them yet.
var keywords = map[string]Type{
	"let":    LET,
	"return": RETURN,
	"true":   TRUE,
	"false":  FALSE,
	"fn":     FUNCTION,
	"if":     IF,
	"else":   ELSE,
}

// LookupIdent determines if an identifier is a keyword or a regular identifier
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}

// IsKeyword checks if a string is a reserved mEX keyword
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}
