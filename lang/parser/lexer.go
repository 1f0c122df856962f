// File: lexer.go
// Title: mEX Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of the mEX pipeline.
//              Converts source text into a stream of typed tokens on
//              demand. Handles all mEX syntax elements and provides
//              position information for error reporting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial lexer implementation

package parser

import (
	mextoken "github.com/msto63/mEX/lang/token"
)

// Lexer performs lexical analysis of mEX source text
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input. After the input is
// exhausted every further call keeps returning the EOF token.
func (l *Lexer) NextToken() mextoken.Token {
	var tok mextoken.Token

	l.skipWhitespace()

	line := l.line
	column := l.column

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = mextoken.Token{Type: mextoken.EQ, Literal: string(ch) + string(l.ch), Line: line, Column: column}
		} else {
			tok = newToken(mextoken.ASSIGN, l.ch, line, column)
		}
	case '!':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = mextoken.Token{Type: mextoken.NOTEQ, Literal: string(ch) + string(l.ch), Line: line, Column: column}
		} else {
			tok = newToken(mextoken.BANG, l.ch, line, column)
		}
	case '+':
		tok = newToken(mextoken.PLUS, l.ch, line, column)
	case '-':
		tok = newToken(mextoken.MINUS, l.ch, line, column)
	case '*':
		tok = newToken(mextoken.ASTERISK, l.ch, line, column)
	case '/':
		tok = newToken(mextoken.SLASH, l.ch, line, column)
	case '<':
		tok = newToken(mextoken.LT, l.ch, line, column)
	case '>':
		tok = newToken(mextoken.GT, l.ch, line, column)
	case ',':
		tok = newToken(mextoken.COMMA, l.ch, line, column)
	case ';':
		tok = newToken(mextoken.SEMICOLON, l.ch, line, column)
	case '(':
		tok = newToken(mextoken.LPAREN, l.ch, line, column)
	case ')':
		tok = newToken(mextoken.RPAREN, l.ch, line, column)
	case '{':
		tok = newToken(mextoken.LBRACE, l.ch, line, column)
	case '}':
		tok = newToken(mextoken.RBRACE, l.ch, line, column)
	case 0:
		tok = mextoken.Token{Type: mextoken.EOF, Literal: "", Line: line, Column: column}
	default:
		if isLetter(l.ch) {
			tok.Line = line
			tok.Column = column
			tok.Literal = l.readIdentifier()
			tok.Type = mextoken.LookupIdent(tok.Literal)
			return tok // Early return to avoid readChar()
		} else if isDigit(l.ch) {
			tok.Type = mextoken.INT
			tok.Literal = l.readNumber()
			tok.Line = line
			tok.Column = column
			return tok // Early return to avoid readChar()
		} else {
			tok = newToken(mextoken.ILLEGAL, l.ch, line, column)
		}
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input as a slice, including the
// trailing EOF token. Illegal tokens are included rather than reported
// as errors; the parser decides how to react to them.
func (l *Lexer) Tokenize() []mextoken.Token {
	var tokens []mextoken.Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == mextoken.EOF {
			return tokens
		}
	}
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readIdentifier reads an identifier (letters and underscores)
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a maximal run of decimal digits
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// newToken creates a new single-character token
func newToken(tokenType mextoken.Type, ch byte, line, column int) mextoken.Token {
	return mextoken.Token{
		Type:    tokenType,
		Literal: string(ch),
		Line:    line,
		Column:  column,
	}
}

// isLetter checks if the character can appear in an identifier
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
