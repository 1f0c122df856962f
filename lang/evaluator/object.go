// File: object.go
// Title: mEX Runtime Object Model
// Description: Defines the runtime value representation for evaluated
//              mEX programs: integers, booleans, and null, with shared
//              singleton instances for the constant values.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial object model

package evaluator

import (
	"fmt"
)

// ObjectType discriminates the runtime value kinds
type ObjectType string

const (
	INTEGER_OBJ ObjectType = "INTEGER"
	BOOLEAN_OBJ ObjectType = "BOOLEAN"
	NULL_OBJ    ObjectType = "NULL"
)

// Object is the interface all runtime values implement
type Object interface {
	// Type returns the value's kind discriminator
	Type() ObjectType

	// Inspect returns a human-readable rendering of the value
	Inspect() string
}

// Integer wraps a 64-bit signed integer value
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType {
	return INTEGER_OBJ
}

func (i *Integer) Inspect() string {
	return fmt.Sprintf("%d", i.Value)
}

// Boolean wraps a truth value. Evaluation hands out the shared True
// and False instances instead of allocating new ones.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType {
	return BOOLEAN_OBJ
}

func (b *Boolean) Inspect() string {
	return fmt.Sprintf("%t", b.Value)
}

// Null represents the absence of a value
type Null struct{}

func (n *Null) Type() ObjectType {
	return NULL_OBJ
}

func (n *Null) Inspect() string {
	return "null"
}

// Shared singleton instances. These are immutable and safe for
// concurrent reads; evaluation never allocates new booleans or nulls.
var (
	True      = &Boolean{Value: true}
	False     = &Boolean{Value: false}
	NullValue = &Null{}
)

// nativeBoolToBoolean maps a Go bool onto the shared singletons
func nativeBoolToBoolean(input bool) *Boolean {
	if input {
		return True
	}
	return False
}
