// File: evaluator.go
// Title: mEX Tree-Walking Evaluator
// Description: Implements evaluation of mEX syntax trees using the AST
//              visitor pattern. Expressions reduce to runtime objects;
//              a program reduces to the value of its last statement.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial evaluator implementation

package evaluator

import (
	mexlog "github.com/msto63/mEX/core/log"
	"github.com/msto63/mEX/lang/ast"
)

// Evaluator walks a syntax tree and reduces it to a runtime object.
// It implements the ast.Visitor interface. An Evaluator carries no
// mutable evaluation state, so a single instance may be reused across
// inputs and goroutines.
type Evaluator struct {
	logger *mexlog.Logger
}

// Options configures evaluator creation
type Options struct {
	// Logger for evaluation tracing; defaults to the package default logger
	Logger *mexlog.Logger
}

// New creates a new evaluator
func New(opts ...Options) *Evaluator {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Logger == nil {
		opt.Logger = mexlog.GetDefault().WithName("evaluator")
	}

	return &Evaluator{
		logger: opt.Logger,
	}
}

// Eval evaluates the given node and returns its runtime value.
// Evaluating the same tree twice yields equal results; the tree is
// never modified. A nil return means the node has no value under the
// current semantics (e.g. unary minus on a boolean).
func (e *Evaluator) Eval(node ast.Node) Object {
	if node == nil {
		return nil
	}

	result := node.Accept(e)
	if result == nil {
		return nil
	}

	obj, ok := result.(Object)
	if !ok {
		return nil
	}
	return obj
}

// VisitProgram evaluates all statements and yields the last value.
// An empty program yields nil.
func (e *Evaluator) VisitProgram(program *ast.Program) interface{} {
	var result interface{}

	for _, stmt := range program.Statements {
		result = stmt.Accept(e)
	}

	return result
}

// VisitLetStatement yields no value. Name binding is not part of the
// current semantics; the bound expression is still evaluated so that
// malformed operands surface during testing.
func (e *Evaluator) VisitLetStatement(stmt *ast.LetStatement) interface{} {
	if stmt.Value != nil {
		stmt.Value.Accept(e)
	}
	return nil
}

// VisitReturnStatement yields the returned expression's value
func (e *Evaluator) VisitReturnStatement(stmt *ast.ReturnStatement) interface{} {
	if stmt.ReturnValue == nil {
		return nil
	}
	return stmt.ReturnValue.Accept(e)
}

// VisitExpressionStatement yields the wrapped expression's value
func (e *Evaluator) VisitExpressionStatement(stmt *ast.ExpressionStatement) interface{} {
	if stmt.Expression == nil {
		return nil
	}
	return stmt.Expression.Accept(e)
}

// VisitIdentifier yields no value. Name resolution is not part of the
// current semantics.
func (e *Evaluator) VisitIdentifier(expr *ast.Identifier) interface{} {
	e.logger.Debug("Identifier has no binding", mexlog.Field("name", expr.Value))
	return nil
}

// VisitIntegerLiteral yields a fresh Integer object
func (e *Evaluator) VisitIntegerLiteral(expr *ast.IntegerLiteral) interface{} {
	return &Integer{Value: expr.Value}
}

// VisitBooleanLiteral yields the shared True or False singleton
func (e *Evaluator) VisitBooleanLiteral(expr *ast.BooleanLiteral) interface{} {
	return nativeBoolToBoolean(expr.Value)
}

// VisitPrefixExpression evaluates !<expr> and -<expr>. An operand
// without a value yields no value.
func (e *Evaluator) VisitPrefixExpression(expr *ast.PrefixExpression) interface{} {
	right := e.Eval(expr.Right)
	if right == nil {
		return nil
	}

	switch expr.Operator {
	case "!":
		return e.evalBangOperator(right)
	case "-":
		return e.evalMinusOperator(right)
	default:
		e.logger.Warn("Unknown prefix operator", mexlog.Field("operator", expr.Operator))
		return NullValue
	}
}

// VisitInfixExpression evaluates <left> <op> <right>. Both operands
// must produce a value before type dispatch; a failed subexpression
// stays absent instead of reading as a type mismatch.
func (e *Evaluator) VisitInfixExpression(expr *ast.InfixExpression) interface{} {
	left := e.Eval(expr.Left)
	if left == nil {
		return nil
	}
	right := e.Eval(expr.Right)
	if right == nil {
		return nil
	}

	return e.evalInfixOperator(expr.Operator, left, right)
}

// evalBangOperator negates by inspecting the operand's value, not its
// identity: true becomes false, false and null become true, and every
// other value (integers included) counts as truthy and becomes false.
func (e *Evaluator) evalBangOperator(right Object) Object {
	switch right := right.(type) {
	case *Boolean:
		return nativeBoolToBoolean(!right.Value)
	case *Null:
		return True
	default:
		return False
	}
}

// evalMinusOperator negates an integer. Any other operand type has no
// defined negation and yields nil.
func (e *Evaluator) evalMinusOperator(right Object) Object {
	integer, ok := right.(*Integer)
	if !ok {
		return nil
	}
	return &Integer{Value: -integer.Value}
}

// evalInfixOperator dispatches on the operand types. Mixed or
// unsupported type combinations yield the null singleton.
func (e *Evaluator) evalInfixOperator(operator string, left, right Object) Object {
	leftInt, leftIsInt := left.(*Integer)
	rightInt, rightIsInt := right.(*Integer)
	if leftIsInt && rightIsInt {
		return e.evalIntegerInfix(operator, leftInt, rightInt)
	}

	leftBool, leftIsBool := left.(*Boolean)
	rightBool, rightIsBool := right.(*Boolean)
	if leftIsBool && rightIsBool {
		switch operator {
		case "==":
			return nativeBoolToBoolean(leftBool.Value == rightBool.Value)
		case "!=":
			return nativeBoolToBoolean(leftBool.Value != rightBool.Value)
		}
		return NullValue
	}

	return NullValue
}

// evalIntegerInfix implements integer arithmetic and comparison.
// Division truncates toward zero (Go semantics for int64).
func (e *Evaluator) evalIntegerInfix(operator string, left, right *Integer) Object {
	switch operator {
	case "+":
		return &Integer{Value: left.Value + right.Value}
	case "-":
		return &Integer{Value: left.Value - right.Value}
	case "*":
		return &Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			e.logger.Warn("Division by zero")
			return NullValue
		}
		return &Integer{Value: left.Value / right.Value}
	case "<":
		return nativeBoolToBoolean(left.Value < right.Value)
	case ">":
		return nativeBoolToBoolean(left.Value > right.Value)
	case "==":
		return nativeBoolToBoolean(left.Value == right.Value)
	case "!=":
		return nativeBoolToBoolean(left.Value != right.Value)
	default:
		return NullValue
	}
}
