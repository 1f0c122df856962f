// File: doc.go
// Title: mEX Evaluator Package Documentation
// Description: Package documentation for the mEX runtime object model
//              and tree-walking evaluator.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial evaluator implementation

/*
Package evaluator reduces mEX syntax trees to runtime objects.

The object model knows three kinds of values: Integer, Boolean, and
Null. True, False, and NullValue are shared singletons; evaluation
never allocates new booleans or nulls, so host code may compare
boolean results with ==.

The Evaluator implements ast.Visitor and walks the tree directly,
without compilation. A program evaluates to the value of its last
statement. Operator semantics:

  - !x inspects the operand's value: !true is false, !false and !null
    are true, everything else is truthy and negates to false
  - -x is defined for integers only; other operands yield nil
  - integer pairs support + - * / < > == != with / truncating toward
    zero; division by zero yields null
  - boolean pairs support == and != by value
  - every other operand combination yields null
  - an operand without a value (an unbound identifier, a failed
    negation) propagates: the whole expression has no value

Evaluation is free of side effects: the tree is never modified and
evaluating it twice yields equal results.
*/
package evaluator
