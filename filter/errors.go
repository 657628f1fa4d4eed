package filter

import "fmt"

// CompilationError indicates a filter expression could not be compiled.
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

// Error implements the error interface.
func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("filter compilation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("filter compilation failed: %s", e.Reason)
}

// Unwrap returns the underlying compiler error, if any.
func (e *CompilationError) Unwrap() error {
	return e.Err
}

// EvaluationError indicates a compiled filter failed at evaluation time.
type EvaluationError struct {
	Expression string
	Err        error
}

// Error implements the error interface.
func (e *EvaluationError) Error() string {
	return fmt.Sprintf("filter evaluation failed for %q: %v", e.Expression, e.Err)
}

// Unwrap returns the underlying evaluation error.
func (e *EvaluationError) Unwrap() error {
	return e.Err
}
