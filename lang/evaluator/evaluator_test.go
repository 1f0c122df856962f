// File: evaluator_test.go
// Title: mEX Evaluator Unit Tests
// Description: Tests evaluation of literals, prefix and infix
//              operators, type-mismatch behavior, singleton identity,
//              and idempotence of repeated evaluation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial evaluator test suite

package evaluator

import (
	"testing"

	"github.com/msto63/mEX/lang/parser"
)

func testEval(t *testing.T, input string) Object {
	t.Helper()

	p := parser.New(input)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parser errors for %q: %v", input, p.Errors())
	}

	return New().Eval(program)
}

func testIntegerObject(t *testing.T, obj Object, expected int64) bool {
	t.Helper()

	result, ok := obj.(*Integer)
	if !ok {
		t.Errorf("object is %T (%+v), want *Integer", obj, obj)
		return false
	}
	if result.Value != expected {
		t.Errorf("object has value %d, want %d", result.Value, expected)
		return false
	}
	return true
}

func testBooleanObject(t *testing.T, obj Object, expected bool) bool {
	t.Helper()

	result, ok := obj.(*Boolean)
	if !ok {
		t.Errorf("object is %T (%+v), want *Boolean", obj, obj)
		return false
	}
	if result.Value != expected {
		t.Errorf("object has value %t, want %t", result.Value, expected)
		return false
	}
	return true
}

func testNullObject(t *testing.T, obj Object) bool {
	t.Helper()

	if obj != NullValue {
		t.Errorf("object is %T (%+v), want the null singleton", obj, obj)
		return false
	}
	return true
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"3 * 3 * 3 + 10", 37},
		{"3 + 3 * 10", 33},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		testIntegerObject(t, result, tt.expected)
	}
}

func TestTruncatingDivision(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"7 / 2", 3},
		{"-7 / 2", -3}, // Truncation toward zero, not flooring
		{"7 / -2", -3},
		{"-7 / -2", 3},
		{"1 / 2", 0},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		testIntegerObject(t, result, tt.expected)
	}
}

func TestDivisionByZero(t *testing.T) {
	testNullObject(t, testEval(t, "5 / 0"))
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 > 1", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"1 != 2", true},
		{"true == true", true},
		{"false == false", true},
		{"true == false", false},
		{"true != false", true},
		{"false != true", true},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		testBooleanObject(t, result, tt.expected)
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
		{"!5", false},
		{"!!true", true},
		{"!!false", false},
		{"!!5", true},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		testBooleanObject(t, result, tt.expected)
	}
}

func TestBangReturnsSingletons(t *testing.T) {
	// Double negation of a singleton returns the identical instance
	if got := testEval(t, "!!true"); got != True {
		t.Errorf("!!true is not the shared True instance: %T (%+v)", got, got)
	}
	if got := testEval(t, "!!false"); got != False {
		t.Errorf("!!false is not the shared False instance: %T (%+v)", got, got)
	}
	if got := testEval(t, "1 == 1"); got != True {
		t.Errorf("comparison result is not the shared True instance: %T (%+v)", got, got)
	}
}

func TestMinusOnNonInteger(t *testing.T) {
	for _, input := range []string{"-true", "-false"} {
		if got := testEval(t, input); got != nil {
			t.Errorf("%q: expected nil, got %T (%+v)", input, got, got)
		}
	}
}

func TestAbsentOperandStaysAbsent(t *testing.T) {
	// Identifiers have no binding, so their value is absent; operators
	// must propagate that instead of coercing it into a value.
	tests := []string{
		"!foobar",
		"-foobar",
		"foobar + 1",
		"1 + foobar",
		"foobar == foobar",
		"-true + 1",
	}

	for _, input := range tests {
		if got := testEval(t, input); got != nil {
			t.Errorf("%q: expected nil, got %T (%+v)", input, got, got)
		}
	}
}

func TestTypeMismatchYieldsNull(t *testing.T) {
	tests := []string{
		"5 + true",
		"true + 5",
		"true + false",
		"true < false",
		"5 == true",
		"false != 10",
	}

	for _, input := range tests {
		result := testEval(t, input)
		if !testNullObject(t, result) {
			t.Errorf("input %q", input)
		}
	}
}

func TestProgramEvaluatesToLastStatement(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"1; 2; 3", 3},
		{"5 + 5; 2 * 3", 6},
		{"return 42;", 42},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		testIntegerObject(t, result, tt.expected)
	}
}

func TestEmptyProgramYieldsNil(t *testing.T) {
	if got := testEval(t, ""); got != nil {
		t.Errorf("empty program: expected nil, got %T (%+v)", got, got)
	}
}

func TestEvalIsIdempotent(t *testing.T) {
	p := parser.New("5 * 2 + 10 == 20")
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parser errors: %v", p.Errors())
	}

	e := New()
	first := e.Eval(program)
	second := e.Eval(program)

	if first != True || second != True {
		t.Errorf("repeated evaluation diverged: first=%v second=%v", first, second)
	}
	// The tree itself is untouched
	if program.String() != "(((5 * 2) + 10) == 20)" {
		t.Errorf("tree rendering changed: %q", program.String())
	}
}

func TestInspect(t *testing.T) {
	tests := []struct {
		obj      Object
		expected string
	}{
		{&Integer{Value: 42}, "42"},
		{&Integer{Value: -7}, "-7"},
		{True, "true"},
		{False, "false"},
		{NullValue, "null"},
	}

	for _, tt := range tests {
		if got := tt.obj.Inspect(); got != tt.expected {
			t.Errorf("Inspect() = %q, want %q", got, tt.expected)
		}
	}
}

func TestObjectTypes(t *testing.T) {
	if (&Integer{Value: 1}).Type() != INTEGER_OBJ {
		t.Errorf("Integer has wrong type discriminator")
	}
	if True.Type() != BOOLEAN_OBJ {
		t.Errorf("Boolean has wrong type discriminator")
	}
	if NullValue.Type() != NULL_OBJ {
		t.Errorf("Null has wrong type discriminator")
	}
}
