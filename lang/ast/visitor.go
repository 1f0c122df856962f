// File: visitor.go
// Title: mEX AST Visitor Pattern
// Description: Provides the visitor interface for traversing mEX syntax
//              trees together with a base visitor for partial overrides
//              and a tree printer used by the CLI inspection commands.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial visitor implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit statement nodes
	VisitProgram(program *Program) interface{}
	VisitLetStatement(stmt *LetStatement) interface{}
	VisitReturnStatement(stmt *ReturnStatement) interface{}
	VisitExpressionStatement(stmt *ExpressionStatement) interface{}

	// Visit expression nodes
	VisitIdentifier(expr *Identifier) interface{}
	VisitIntegerLiteral(expr *IntegerLiteral) interface{}
	VisitBooleanLiteral(expr *BooleanLiteral) interface{}
	VisitPrefixExpression(expr *PrefixExpression) interface{}
	VisitInfixExpression(expr *InfixExpression) interface{}
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitProgram(program *Program) interface{} {
	for _, stmt := range program.Statements {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitLetStatement(stmt *LetStatement) interface{} {
	if stmt.Name != nil {
		stmt.Name.Accept(bv)
	}
	if stmt.Value != nil {
		stmt.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitReturnStatement(stmt *ReturnStatement) interface{} {
	if stmt.ReturnValue != nil {
		return stmt.ReturnValue.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	if stmt.Expression != nil {
		return stmt.Expression.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitIdentifier(expr *Identifier) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitIntegerLiteral(expr *IntegerLiteral) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitBooleanLiteral(expr *BooleanLiteral) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitPrefixExpression(expr *PrefixExpression) interface{} {
	if expr.Right != nil {
		return expr.Right.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitInfixExpression(expr *InfixExpression) interface{} {
	if expr.Left != nil {
		expr.Left.Accept(bv)
	}
	if expr.Right != nil {
		expr.Right.Accept(bv)
	}
	return nil
}

// TreePrinter renders an AST as an indented tree for inspection.
// Used by the "mex parse" command.
type TreePrinter struct {
	out    strings.Builder
	indent int
}

// NewTreePrinter creates a new tree printer
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// Print renders the given node and returns the tree text
func (tp *TreePrinter) Print(node Node) string {
	tp.out.Reset()
	tp.indent = 0
	node.Accept(tp)
	return tp.out.String()
}

func (tp *TreePrinter) line(format string, args ...interface{}) {
	tp.out.WriteString(strings.Repeat("  ", tp.indent))
	tp.out.WriteString(fmt.Sprintf(format, args...))
	tp.out.WriteString("\n")
}

func (tp *TreePrinter) VisitProgram(program *Program) interface{} {
	tp.line("Program (%d statements)", len(program.Statements))
	tp.indent++
	for _, stmt := range program.Statements {
		stmt.Accept(tp)
	}
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitLetStatement(stmt *LetStatement) interface{} {
	name := "?"
	if stmt.Name != nil {
		name = stmt.Name.Value
	}
	tp.line("LetStatement name=%s", name)
	tp.indent++
	if stmt.Value != nil {
		stmt.Value.Accept(tp)
	}
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitReturnStatement(stmt *ReturnStatement) interface{} {
	tp.line("ReturnStatement")
	tp.indent++
	if stmt.ReturnValue != nil {
		stmt.ReturnValue.Accept(tp)
	}
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	tp.line("ExpressionStatement")
	tp.indent++
	if stmt.Expression != nil {
		stmt.Expression.Accept(tp)
	}
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitIdentifier(expr *Identifier) interface{} {
	tp.line("Identifier %s", expr.Value)
	return nil
}

func (tp *TreePrinter) VisitIntegerLiteral(expr *IntegerLiteral) interface{} {
	tp.line("IntegerLiteral %d", expr.Value)
	return nil
}

func (tp *TreePrinter) VisitBooleanLiteral(expr *BooleanLiteral) interface{} {
	tp.line("BooleanLiteral %t", expr.Value)
	return nil
}

func (tp *TreePrinter) VisitPrefixExpression(expr *PrefixExpression) interface{} {
	tp.line("PrefixExpression %q", expr.Operator)
	tp.indent++
	if expr.Right != nil {
		expr.Right.Accept(tp)
	}
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitInfixExpression(expr *InfixExpression) interface{} {
	tp.line("InfixExpression %q", expr.Operator)
	tp.indent++
	if expr.Left != nil {
		expr.Left.Accept(tp)
	}
	if expr.Right != nil {
		expr.Right.Accept(tp)
	}
	tp.indent--
	return nil
}
