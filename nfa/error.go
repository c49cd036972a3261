// Package nfa provides a Thompson NFA (Non-deterministic Finite Automaton)
// built from a syntax tree.
//
// Compilation walks the tree once, assembling a Fragment per node from
// globally unique state ids handed out by a Context, and finalizes the
// top-level fragment into an immutable NFA that can be shared freely between
// goroutines.
package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors
var (
	// ErrTooComplex indicates the pattern needs more states than allowed
	ErrTooComplex = errors.New("pattern too complex")

	// ErrInvalidConfig indicates invalid configuration was provided
	ErrInvalidConfig = errors.New("invalid NFA configuration")
)

// CompileError wraps compilation errors with additional context
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("NFA compilation failed for pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("NFA compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
