// File: logger_test.go
// Title: Core Logger Unit Tests
// Description: Tests for the structured logger covering level filtering,
//              contextual fields, derived loggers, and output formats.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newTestLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: buf,
		Name:   "test",
	})
	return logger, buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn, FormatText)

	logger.Debug("should not appear")
	logger.Info("should not appear either")
	logger.Warn("should appear")
	logger.Error("should also appear")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("Suppressed levels leaked into output: %s", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("Warn message missing from output: %s", out)
	}
	if !strings.Contains(out, "should also appear") {
		t.Errorf("Error message missing from output: %s", out)
	}
}

func TestJSONOutput(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatJSON)

	logger.Info("evaluation finished", Fields{"statements": 3, "value": "42"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, buf.String())
	}

	if entry["message"] != "evaluation finished" {
		t.Errorf("Expected message 'evaluation finished', got %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("Expected level info, got %v", entry["level"])
	}
	if entry["logger"] != "test" {
		t.Errorf("Expected logger 'test', got %v", entry["logger"])
	}
	if entry["statements"] != float64(3) {
		t.Errorf("Expected statements field 3, got %v", entry["statements"])
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newTestLogger(LevelDebug, FormatJSON)
	child := parent.WithField("component", "mex-parser")

	parent.Info("parent message")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if _, exists := entry["component"]; exists {
		t.Error("Parent logger inherited child field")
	}

	buf.Reset()
	child.Info("child message")
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if entry["component"] != "mex-parser" {
		t.Errorf("Expected component field on child entry, got %v", entry["component"])
	}
}

func TestWithSessionID(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatJSON)

	logger.WithSessionID("abc-123").Info("repl input")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if entry["session_id"] != "abc-123" {
		t.Errorf("Expected session_id abc-123, got %v", entry["session_id"])
	}
}

func TestTextFormatterDeterministicFields(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatText)

	logger.Info("msg", Fields{"b": 2, "a": 1, "c": 3})

	out := buf.String()
	ai := strings.Index(out, "a=1")
	bi := strings.Index(out, "b=2")
	ci := strings.Index(out, "c=3")
	if ai == -1 || bi == -1 || ci == -1 {
		t.Fatalf("Fields missing from output: %s", out)
	}
	if !(ai < bi && bi < ci) {
		t.Errorf("Fields not sorted: %s", out)
	}
}

func TestIsLevelEnabled(t *testing.T) {
	logger, _ := newTestLogger(LevelInfo, FormatText)

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("Debug should be disabled at Info level")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("Error should be enabled at Info level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"bogus", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("parse").WithField("input", "let x = 5;")
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Error("Expected positive elapsed duration")
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if entry["operation"] != "parse" {
		t.Errorf("Expected operation 'parse', got %v", entry["operation"])
	}
	if _, ok := entry["duration_ms"]; !ok {
		t.Error("Expected duration_ms field")
	}

	// Second Stop is a no-op
	if timer.Stop() != 0 {
		t.Error("Second Stop should return 0")
	}
}
