// Panic recovery utilities. The gonum matrix kernels panic on shape errors
// and allocation failures; the quadrature and regression paths convert such
// panics into structured errors instead of crashing the caller.

package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError is an error created from a recovered panic. It keeps the
// original panic value and the stack trace captured at recovery time.
type PanicError struct {
	// PanicValue is the original value passed to panic()
	PanicValue interface{}

	// StackTrace contains the stack trace at the time of panic
	StackTrace string

	// Operation identifies where the panic was recovered
	Operation string
}

// Error implements the error interface for PanicError.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap returns nil; a PanicError does not wrap another error.
func (e *PanicError) Unwrap() error {
	return nil
}

// String provides detailed information including the stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError creates a new PanicError for the given operation and panic
// value.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover converts a panic into an error. Use with defer and a pointer to
// the function's error return value:
//
//	func (p *Parameter) LocalQuadrature(n int) (nodes, weights []float64, err error) {
//	    defer errors.Recover(&err, "Parameter.LocalQuadrature")
//	    // ...
//	}
//
// If the function already carries an error, the panic information wraps it.
func Recover(err *error, operation string) {
	if r := recover(); r != nil {
		panicErr := NewPanicError(operation, r)

		if *err != nil {
			*err = fmt.Errorf("panic in %s: %v (original error: %w)",
				operation, r, *err)
		} else {
			*err = panicErr
		}
	}
}

// SafeExecute runs fn and recovers from any panic, converting it to an
// error.
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
