// File: mex.go
// Title: mEX Main Interface and Engine
// Description: Provides the main mEX engine interface and high-level
//              API for parsing and evaluating mEX source text.
//              Integrates parser, AST, and evaluator components.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial mEX engine implementation

package lang

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	mexerror "github.com/msto63/mEX/core/error"
	mexlog "github.com/msto63/mEX/core/log"
	"github.com/msto63/mEX/lang/ast"
	"github.com/msto63/mEX/lang/evaluator"
	mexparser "github.com/msto63/mEX/lang/parser"
	mexstringx "github.com/msto63/mEX/utils/stringx"
)

// Engine coordinates the mEX pipeline: source text in, runtime value
// out. Every Run gets a fresh lexer and parser, so a single Engine is
// safe for concurrent use.
type Engine struct {
	evaluator *evaluator.Evaluator
	logger    *mexlog.Logger
	options   Options
}

// Options configures the mEX engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mexlog.Logger

	// MaxInputLength limits source text length (default: 65536)
	MaxInputLength int
}

// Result represents the outcome of running a piece of mEX source
type Result struct {
	// ID uniquely identifies this run
	ID string

	// Source is the original input text
	Source string

	// Value is the runtime value of the last statement (nil if none)
	Value evaluator.Object

	// Program is the parsed AST
	Program *ast.Program

	// ParseErrors lists syntax errors in encounter order
	ParseErrors []string

	// Duration is the time taken for the full pipeline
	Duration time.Duration
}

// NewEngine creates a new mEX engine with the specified options
func NewEngine(opts ...Options) *Engine {
	options := Options{
		Logger:         mexlog.GetDefault(),
		MaxInputLength: 65536,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxInputLength > 0 {
			options.MaxInputLength = provided.MaxInputLength
		}
	}

	logger := options.Logger.WithField("component", "mex-engine")

	engine := &Engine{
		evaluator: evaluator.New(evaluator.Options{Logger: logger}),
		logger:    logger,
		options:   options,
	}

	logger.Debug("mEX engine initialized",
		mexlog.Field("maxInputLength", options.MaxInputLength))

	return engine
}

// Run lexes, parses, and evaluates the given source text. Syntax
// errors do not abort the pipeline: the returned Result carries the
// recovered program and the error list, and the error return wraps
// the first message for hosts that only look at the error.
func (e *Engine) Run(source string) (*Result, error) {
	timer := e.logger.StartTimer("mex_run")
	defer timer.Stop()

	start := time.Now()

	result, err := e.Parse(source)
	if err != nil {
		return result, err
	}

	if len(result.ParseErrors) == 0 {
		result.Value = e.evaluator.Eval(result.Program)
	}
	result.Duration = time.Since(start)

	if len(result.ParseErrors) > 0 {
		e.logger.Warn("mEX run finished with syntax errors",
			mexlog.Field("runId", result.ID),
			mexlog.Field("errors", len(result.ParseErrors)))
		return result, e.syntaxError(result.ParseErrors)
	}

	e.logger.Debug("mEX run finished",
		mexlog.Field("runId", result.ID),
		mexlog.Field("value", result.Rendering()))

	return result, nil
}

// Parse lexes and parses the given source without evaluating it
func (e *Engine) Parse(source string) (*Result, error) {
	if err := e.validateInput(source); err != nil {
		return nil, err
	}

	start := time.Now()

	p := mexparser.New(source, mexparser.Options{Logger: e.logger})
	program := p.ParseProgram()

	result := &Result{
		ID:          uuid.New().String(),
		Source:      source,
		Program:     program,
		ParseErrors: p.Errors(),
		Duration:    time.Since(start),
	}

	return result, nil
}

// Validate checks if the source is syntactically valid
func (e *Engine) Validate(source string) error {
	result, err := e.Parse(source)
	if err != nil {
		return err
	}
	if len(result.ParseErrors) > 0 {
		return e.syntaxError(result.ParseErrors)
	}
	return nil
}

// validateInput validates the raw source text
func (e *Engine) validateInput(source string) error {
	if mexstringx.IsBlank(source) {
		return mexerror.New("source input cannot be empty").
			WithCode(mexerror.CodeEmptyInput)
	}

	if len(source) > e.options.MaxInputLength {
		return mexerror.Newf("source input exceeds maximum length: %d > %d",
			len(source), e.options.MaxInputLength).
			WithCode(mexerror.CodeInputTooLong)
	}

	return nil
}

// syntaxError folds the parser's error list into a single coded error
func (e *Engine) syntaxError(parseErrors []string) error {
	return mexerror.Newf("%d syntax error(s), first: %s",
		len(parseErrors), parseErrors[0]).
		WithCode(mexerror.CodeSyntax).
		WithDetail("errors", strings.Join(parseErrors, "; "))
}

// Rendering returns the human-readable form of the result value.
// A result without a value renders as the empty string.
func (r *Result) Rendering() string {
	if r.Value == nil {
		return ""
	}
	return r.Value.Inspect()
}

// HasErrors returns true if the run collected syntax errors
func (r *Result) HasErrors() bool {
	return len(r.ParseErrors) > 0
}

// String returns a one-line summary of the result
func (r *Result) String() string {
	if r.HasErrors() {
		return fmt.Sprintf("FAILED: %d syntax error(s)", len(r.ParseErrors))
	}
	return fmt.Sprintf("OK: %s (Duration: %v)", r.Rendering(), r.Duration)
}
