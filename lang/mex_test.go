// File: mex_test.go
// Title: mEX Engine Unit Tests
// Description: Tests the high-level engine facade: full pipeline runs,
//              input validation, syntax error folding, and reentrancy.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial engine test suite

package lang

import (
	"errors"
	"sync"
	"testing"

	mexerror "github.com/msto63/mEX/core/error"
)

func TestEngineRun(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		input    string
		expected string
	}{
		{"5", "5"},
		{"5 * 2 + 10;", "20"},
		{"7 / 2", "3"},
		{"-7 / 2", "-3"},
		{"!true", "false"},
		{"5 > 4 == 3 < 4", "true"},
		{"1; 2; 3", "3"},
		{"5 + true", "null"},
	}

	for _, tt := range tests {
		result, err := engine.Run(tt.input)
		if err != nil {
			t.Errorf("Run(%q) failed: %v", tt.input, err)
			continue
		}
		if result.Rendering() != tt.expected {
			t.Errorf("Run(%q) = %q, want %q", tt.input, result.Rendering(), tt.expected)
		}
		if result.ID == "" {
			t.Errorf("Run(%q): result has no ID", tt.input)
		}
	}
}

func TestEngineRunDistinctIDs(t *testing.T) {
	engine := NewEngine()

	first, err := engine.Run("1 + 1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	second, err := engine.Run("1 + 1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("two runs share the ID %q", first.ID)
	}
}

func TestEngineEmptyInput(t *testing.T) {
	engine := NewEngine()

	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := engine.Run(input)
		if err == nil {
			t.Errorf("Run(%q): expected error for blank input", input)
			continue
		}
		if mexerror.GetCode(err) != mexerror.CodeEmptyInput {
			t.Errorf("Run(%q): code = %s, want %s", input, mexerror.GetCode(err), mexerror.CodeEmptyInput)
		}
	}
}

func TestEngineInputTooLong(t *testing.T) {
	engine := NewEngine(Options{MaxInputLength: 8})

	_, err := engine.Run("1 + 2 + 3 + 4")
	if err == nil {
		t.Fatalf("expected error for oversized input")
	}
	if mexerror.GetCode(err) != mexerror.CodeInputTooLong {
		t.Errorf("code = %s, want %s", mexerror.GetCode(err), mexerror.CodeInputTooLong)
	}
}

func TestEngineSyntaxErrors(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Run("let 123; let a;")
	if err == nil {
		t.Fatalf("expected syntax error")
	}

	var mexErr *mexerror.Error
	if !errors.As(err, &mexErr) {
		t.Fatalf("error is %T, want *mexerror.Error", err)
	}
	if mexErr.Code() != mexerror.CodeSyntax {
		t.Errorf("code = %s, want %s", mexErr.Code(), mexerror.CodeSyntax)
	}

	// The result still carries the recovered program and all errors
	if result == nil {
		t.Fatalf("result should not be nil on syntax errors")
	}
	if len(result.ParseErrors) != 3 {
		t.Errorf("expected 3 parse errors, got %d: %v", len(result.ParseErrors), result.ParseErrors)
	}
	if result.Value != nil {
		t.Errorf("no value should be produced on syntax errors, got %v", result.Value)
	}
}

func TestEngineParseOnly(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Parse("1 + 2 * 3")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if result.Value != nil {
		t.Errorf("Parse should not evaluate, got value %v", result.Value)
	}
	if got := result.Program.String(); got != "(1 + (2 * 3))" {
		t.Errorf("Program.String() = %q, want %q", got, "(1 + (2 * 3))")
	}
}

func TestEngineValidate(t *testing.T) {
	engine := NewEngine()

	if err := engine.Validate("let x = 5;"); err != nil {
		t.Errorf("valid source rejected: %v", err)
	}
	if err := engine.Validate("let = 5;"); err == nil {
		t.Errorf("invalid source accepted")
	}
}

func TestEngineIsReentrant(t *testing.T) {
	engine := NewEngine()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				result, err := engine.Run("5 * 2 + 10")
				if err != nil {
					t.Errorf("concurrent Run failed: %v", err)
					return
				}
				if result.Rendering() != "20" {
					t.Errorf("concurrent Run = %q, want %q", result.Rendering(), "20")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestResultString(t *testing.T) {
	engine := NewEngine()

	ok, err := engine.Run("2 + 2")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if ok.HasErrors() {
		t.Errorf("unexpected errors: %v", ok.ParseErrors)
	}

	failed, _ := engine.Run("let;")
	if failed == nil || !failed.HasErrors() {
		t.Fatalf("expected a failed result")
	}
	if failed.String() == ok.String() {
		t.Errorf("failed and successful results render identically")
	}
}
