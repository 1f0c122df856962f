// File: nodes.go
// Title: mEX AST Node Definitions
// Description: Defines all AST node types for representing parsed mEX
//              programs including statements and expressions. Provides
//              string representations and validation methods.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"

	mextoken "github.com/msto63/mEX/lang/token"
	mexstringx "github.com/msto63/mEX/utils/stringx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// TokenLiteral returns the literal of the node's originating token
	TokenLiteral() string

	// String returns a source-like rendering of the node with
	// expressions fully parenthesized
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Validate performs basic structural validation of the node
	Validate() error
}

// Statement is the marker interface for all statement nodes
type Statement interface {
	Node
	statementNode()
}

// Expression is the marker interface for all expression nodes
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node of every parsed mEX source.
// Statements keep their source order and are never reordered.
type Program struct {
	Statements []Statement
}

// TokenLiteral returns the literal of the first statement's token
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

func (p *Program) Validate() error {
	for i, s := range p.Statements {
		if s == nil {
			return fmt.Errorf("statement %d is missing", i)
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}

// LetStatement represents a let binding: let <name> = <value>;
type LetStatement struct {
	Token mextoken.Token // The LET token
	Name  *Identifier    // Bound identifier
	Value Expression     // Bound expression
}

func (ls *LetStatement) statementNode() {}

func (ls *LetStatement) TokenLiteral() string {
	return ls.Token.Literal
}

func (ls *LetStatement) String() string {
	var out strings.Builder
	out.WriteString(ls.TokenLiteral() + " ")
	if ls.Name != nil {
		out.WriteString(ls.Name.String())
	}
	out.WriteString(" = ")
	if ls.Value != nil {
		out.WriteString(ls.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

func (ls *LetStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitLetStatement(ls)
}

func (ls *LetStatement) Validate() error {
	if ls.Name == nil {
		return fmt.Errorf("let statement requires a name")
	}
	if ls.Value == nil {
		return fmt.Errorf("let statement requires a value")
	}
	return ls.Value.Validate()
}

// ReturnStatement represents: return <expression>;
type ReturnStatement struct {
	Token       mextoken.Token // The RETURN token
	ReturnValue Expression     // Returned expression
}

func (rs *ReturnStatement) statementNode() {}

func (rs *ReturnStatement) TokenLiteral() string {
	return rs.Token.Literal
}

func (rs *ReturnStatement) String() string {
	var out strings.Builder
	out.WriteString(rs.TokenLiteral())
	if rs.ReturnValue != nil {
		out.WriteString(" " + rs.ReturnValue.String())
	}
	out.WriteString(";")
	return out.String()
}

func (rs *ReturnStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitReturnStatement(rs)
}

func (rs *ReturnStatement) Validate() error {
	if rs.ReturnValue == nil {
		return fmt.Errorf("return statement requires a value")
	}
	return rs.ReturnValue.Validate()
}

// ExpressionStatement wraps a bare expression used as a statement
type ExpressionStatement struct {
	Token      mextoken.Token // First token of the expression
	Expression Expression     // Wrapped expression
}

func (es *ExpressionStatement) statementNode() {}

func (es *ExpressionStatement) TokenLiteral() string {
	return es.Token.Literal
}

func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}

func (es *ExpressionStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitExpressionStatement(es)
}

func (es *ExpressionStatement) Validate() error {
	if es.Expression == nil {
		return fmt.Errorf("expression statement requires an expression")
	}
	return es.Expression.Validate()
}

// Identifier represents a name reference
type Identifier struct {
	Token mextoken.Token // The IDENT token
	Value string         // Identifier name
}

func (i *Identifier) expressionNode() {}

func (i *Identifier) TokenLiteral() string {
	return i.Token.Literal
}

func (i *Identifier) String() string {
	return i.Value
}

func (i *Identifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdentifier(i)
}

func (i *Identifier) Validate() error {
	if mexstringx.IsBlank(i.Value) {
		return fmt.Errorf("identifier name is required")
	}
	return nil
}

// IntegerLiteral represents an integer literal
type IntegerLiteral struct {
	Token mextoken.Token // The INT token
	Value int64          // Parsed numeric value
}

func (il *IntegerLiteral) expressionNode() {}

func (il *IntegerLiteral) TokenLiteral() string {
	return il.Token.Literal
}

func (il *IntegerLiteral) String() string {
	return il.Token.Literal
}

func (il *IntegerLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitIntegerLiteral(il)
}

func (il *IntegerLiteral) Validate() error {
	return nil
}

// BooleanLiteral represents true or false
type BooleanLiteral struct {
	Token mextoken.Token // The TRUE or FALSE token
	Value bool           // Literal value
}

func (bl *BooleanLiteral) expressionNode() {}

func (bl *BooleanLiteral) TokenLiteral() string {
	return bl.Token.Literal
}

func (bl *BooleanLiteral) String() string {
	return bl.Token.Literal
}

func (bl *BooleanLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitBooleanLiteral(bl)
}

func (bl *BooleanLiteral) Validate() error {
	return nil
}

// PrefixExpression represents a unary expression (!x, -x)
type PrefixExpression struct {
	Token    mextoken.Token // The prefix operator token
	Operator string         // Operator ("!" or "-")
	Right    Expression     // Operand expression
}

func (pe *PrefixExpression) expressionNode() {}

func (pe *PrefixExpression) TokenLiteral() string {
	return pe.Token.Literal
}

func (pe *PrefixExpression) String() string {
	var out strings.Builder
	out.WriteString("(")
	out.WriteString(pe.Operator)
	if pe.Right != nil {
		out.WriteString(pe.Right.String())
	}
	out.WriteString(")")
	return out.String()
}

func (pe *PrefixExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitPrefixExpression(pe)
}

func (pe *PrefixExpression) Validate() error {
	if mexstringx.IsBlank(pe.Operator) {
		return fmt.Errorf("operator is required")
	}
	if pe.Right == nil {
		return fmt.Errorf("operand is required")
	}
	return pe.Right.Validate()
}

// InfixExpression represents a binary expression (a + b, a == b)
type InfixExpression struct {
	Token    mextoken.Token // The operator token
	Left     Expression     // Left operand
	Operator string         // Operator ("+", "==", ...)
	Right    Expression     // Right operand
}

func (ie *InfixExpression) expressionNode() {}

func (ie *InfixExpression) TokenLiteral() string {
	return ie.Token.Literal
}

func (ie *InfixExpression) String() string {
	var out strings.Builder
	out.WriteString("(")
	if ie.Left != nil {
		out.WriteString(ie.Left.String())
	}
	out.WriteString(" " + ie.Operator + " ")
	if ie.Right != nil {
		out.WriteString(ie.Right.String())
	}
	out.WriteString(")")
	return out.String()
}

func (ie *InfixExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitInfixExpression(ie)
}

func (ie *InfixExpression) Validate() error {
	if ie.Left == nil {
		return fmt.Errorf("left operand is required")
	}
	if ie.Right == nil {
		return fmt.Errorf("right operand is required")
	}
	if mexstringx.IsBlank(ie.Operator) {
		return fmt.Errorf("operator is required")
	}
	if err := ie.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := ie.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	return nil
}
