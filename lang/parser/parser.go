// File: parser.go
// Title: mEX Syntax Parser
// Description: Implements a Pratt parser (top-down operator precedence)
//              that builds an AST from the token stream. Handles all mEX
//              statement forms, prefix and infix expressions, and
//              collects syntax errors with panic-mode recovery.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial Pratt parser implementation

package parser

import (
	"fmt"
	"strconv"

	mexlog "github.com/msto63/mEX/core/log"
	"github.com/msto63/mEX/lang/ast"
	mextoken "github.com/msto63/mEX/lang/token"
)

// Operator precedence levels, from weakest to strongest binding
const (
	_ int = iota
	LOWEST
	EQUALS      // ==, !=
	LESSGREATER // <, >
	SUM         // +, -
	PRODUCT     // *, /
	PREFIX      // -x, !x
	CALL        // reserved for call expressions
)

// precedences maps infix operator tokens to their binding power
var precedences = map[mextoken.Type]int{
	mextoken.EQ:       EQUALS,
	mextoken.NOTEQ:    EQUALS,
	mextoken.LT:       LESSGREATER,
	mextoken.GT:       LESSGREATER,
	mextoken.PLUS:     SUM,
	mextoken.MINUS:    SUM,
	mextoken.ASTERISK: PRODUCT,
	mextoken.SLASH:    PRODUCT,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser builds an AST from the lexer's token stream
type Parser struct {
	lexer  *Lexer
	logger *mexlog.Logger

	curToken  mextoken.Token
	peekToken mextoken.Token

	errors []string

	prefixParseFns map[mextoken.Type]prefixParseFn
	infixParseFns  map[mextoken.Type]infixParseFn
}

// Options configures parser creation
type Options struct {
	// Logger for parse tracing; defaults to the package default logger
	Logger *mexlog.Logger
}

// New creates a new parser for the given source text
func New(input string, opts ...Options) *Parser {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Logger == nil {
		opt.Logger = mexlog.GetDefault().WithName("parser")
	}

	p := &Parser{
		lexer:  NewLexer(input),
		logger: opt.Logger,
		errors: []string{},
	}

	// Register prefix parse functions
	p.prefixParseFns = map[mextoken.Type]prefixParseFn{
		mextoken.IDENT: p.parseIdentifier,
		mextoken.INT:   p.parseIntegerLiteral,
		mextoken.TRUE:  p.parseBooleanLiteral,
		mextoken.FALSE: p.parseBooleanLiteral,
		mextoken.BANG:  p.parsePrefixExpression,
		mextoken.MINUS: p.parsePrefixExpression,
	}

	// Register infix parse functions
	p.infixParseFns = map[mextoken.Type]infixParseFn{
		mextoken.PLUS:     p.parseInfixExpression,
		mextoken.MINUS:    p.parseInfixExpression,
		mextoken.ASTERISK: p.parseInfixExpression,
		mextoken.SLASH:    p.parseInfixExpression,
		mextoken.EQ:       p.parseInfixExpression,
		mextoken.NOTEQ:    p.parseInfixExpression,
		mextoken.LT:       p.parseInfixExpression,
		mextoken.GT:       p.parseInfixExpression,
	}

	// Read two tokens so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// ParseProgram parses the complete input and returns the program root.
// The returned program is never nil; syntax errors are collected and
// available via Errors().
func (p *Parser) ParseProgram() *ast.Program {
	timer := p.logger.StartTimer("parse")
	defer timer.Stop()

	program := &ast.Program{
		Statements: []ast.Statement{},
	}

	for p.curToken.Type != mextoken.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	if len(p.errors) > 0 {
		p.logger.Debug("Parsing finished with errors",
			mexlog.Field("statements", len(program.Statements)),
			mexlog.Field("errors", len(p.errors)))
	} else {
		p.logger.Debug("Parsing finished",
			mexlog.Field("statements", len(program.Statements)))
	}

	return program
}

// Errors returns all syntax errors collected so far, in encounter order
func (p *Parser) Errors() []string {
	return p.errors
}

// nextToken advances the token window by one
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

// parseStatement dispatches on the current token's statement form
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case mextoken.LET:
		return p.parseLetStatement()
	case mextoken.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses: let <ident> = <expression>;
func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(mextoken.IDENT) {
		return nil
	}

	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(mextoken.ASSIGN) {
		return nil
	}

	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekToken.Type == mextoken.SEMICOLON {
		p.nextToken()
	}

	return stmt
}

// parseReturnStatement parses: return <expression>;
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	p.nextToken()

	stmt.ReturnValue = p.parseExpression(LOWEST)

	if p.peekToken.Type == mextoken.SEMICOLON {
		p.nextToken()
	}

	return stmt
}

// parseExpressionStatement parses a bare expression as a statement
func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)

	if stmt.Expression == nil {
		return nil
	}

	if p.peekToken.Type == mextoken.SEMICOLON {
		p.nextToken()
	}

	return stmt
}

// parseExpression is the Pratt parsing core. It parses a prefix
// expression for the current token, then repeatedly extends it to the
// left operand of infix expressions while the next operator binds
// stronger than the given precedence.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}

	leftExpr := prefix()

	for p.peekToken.Type != mextoken.SEMICOLON && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExpr
		}

		p.nextToken()

		leftExpr = infix(leftExpr)
	}

	return leftExpr
}

// parseIdentifier parses an identifier reference
func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

// parseIntegerLiteral parses an integer literal into its int64 value
func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors,
			fmt.Sprintf("could not parse %q as integer", p.curToken.Literal))
		return nil
	}

	lit.Value = value
	return lit
}

// parseBooleanLiteral parses true or false
func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{
		Token: p.curToken,
		Value: p.curToken.Type == mextoken.TRUE,
	}
}

// parsePrefixExpression parses !<expr> and -<expr>
func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()

	expr.Right = p.parseExpression(PREFIX)

	return expr
}

// parseInfixExpression parses <left> <op> <right> left-associatively
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)

	return expr
}

// expectPeek advances if the next token has the expected type,
// otherwise records an error and stays put
func (p *Parser) expectPeek(t mextoken.Type) bool {
	if p.peekToken.Type == t {
		p.nextToken()
		return true
	}

	p.peekError(t)
	return false
}

// peekPrecedence returns the binding power of the next token
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// curPrecedence returns the binding power of the current token
func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// peekError records an unexpected-token error
func (p *Parser) peekError(t mextoken.Type) {
	p.errors = append(p.errors,
		fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peekToken.Type))
}

// noPrefixParseFnError records a token that cannot start an expression
func (p *Parser) noPrefixParseFnError(t mextoken.Type) {
	p.errors = append(p.errors,
		fmt.Sprintf("no prefix parse function for %s found", t))
}
