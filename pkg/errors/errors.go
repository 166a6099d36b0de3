// Package errors provides the error handling and warning system used across
// the library. Errors are structured types carrying operation context, with
// stack traces attached via cockroachdb/errors and zerolog marshalers for
// structured logging.
package errors

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error.
		log.Printf("PolyUQ-Warning: %v\n", w)
	}
	// zerolog bridge, injected lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the warning handler for the whole library.
// It controls how non-fatal conditions such as TensorGridSizeWarning
// are surfaced.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // discard warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs the zerolog warning sink (injected by pkg/log
// to avoid a circular import).
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn raises a warning. When a zerolog sink is installed the warning is
// emitted as a structured log event, otherwise the plain handler runs.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// TensorGridSizeWarning is raised when a tensor-product quadrature rule is
// about to allocate more points than the advisory limit. The rule is still
// built; the warning exists so callers can switch to a sparser rule or a
// Monte Carlo estimate.
type TensorGridSizeWarning struct {
	Dimensions int
	Points     int64
	Limit      int64
}

func (w *TensorGridSizeWarning) Error() string {
	return fmt.Sprintf("tensor-grid rule over %d dimensions has %d points (advisory limit %d). Consider a Monte Carlo rule or lower per-dimension orders.",
		w.Dimensions, w.Points, w.Limit)
}

// MarshalZerologObject adds structured warning fields to a zerolog event.
func (w *TensorGridSizeWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Int("dimensions", w.Dimensions).
		Int64("points", w.Points).
		Int64("limit", w.Limit).
		Str("type", "TensorGridSizeWarning")
}

// NewTensorGridSizeWarning creates a new TensorGridSizeWarning.
func NewTensorGridSizeWarning(dimensions int, points, limit int64) *TensorGridSizeWarning {
	return &TensorGridSizeWarning{Dimensions: dimensions, Points: points, Limit: limit}
}

// ConditioningWarning is raised when a linear solve is close to singular.
// The computed result is returned anyway; coefficients obtained under this
// warning should be validated against held-out data.
type ConditioningWarning struct {
	Op        string
	Condition float64
	Threshold float64
}

func (w *ConditioningWarning) Error() string {
	return fmt.Sprintf("%s: matrix is ill-conditioned (condition number %.3e exceeds %.3e). Results may be inaccurate.",
		w.Op, w.Condition, w.Threshold)
}

// MarshalZerologObject adds structured warning fields to a zerolog event.
func (w *ConditioningWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Float64("condition_number", w.Condition).
		Float64("threshold", w.Threshold).
		Str("type", "ConditioningWarning")
}

// NewConditioningWarning creates a new ConditioningWarning.
func NewConditioningWarning(op string, condition, threshold float64) *ConditioningWarning {
	return &ConditioningWarning{Op: op, Condition: condition, Threshold: threshold}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NotFittedError is returned when a surrogate method that needs coefficients
// is called before any have been set.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("polyuq: %s: no coefficients have been set. Provide them via SetCoefficients() before calling %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a new NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError is returned when the shape of an input does not match what
// the operation expects.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/dimensions
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("polyuq: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError is returned when a constructor or setter rejects a
// parameter value. It is more specific than ValueError: it names the
// offending parameter and carries the rejected value.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("polyuq: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a new ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError is returned when an argument value is invalid for the
// operation, such as a non-positive point count for a quadrature rule.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("polyuq: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// UnsupportedOptionError is returned when a named option, such as a
// quadrature mode, is not one of the supported choices.
type UnsupportedOptionError struct {
	Op        string
	Option    string
	Supported []string
}

func (e *UnsupportedOptionError) Error() string {
	return fmt.Sprintf("polyuq: %s: unsupported option '%s'. Supported options: %s",
		e.Op, e.Option, strings.Join(e.Supported, ", "))
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *UnsupportedOptionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("option", e.Option).
		Strs("supported", e.Supported).
		Str("type", "UnsupportedOptionError")
}

// NewUnsupportedOptionError creates a new UnsupportedOptionError with a
// stack trace.
func NewUnsupportedOptionError(op, option string, supported []string) error {
	err := &UnsupportedOptionError{Op: op, Option: option, Supported: supported}
	return errors.WithStack(err)
}

// UnsupportedDistributionError is returned when a parameter is constructed
// with a distribution kind the library has no orthogonal-polynomial family
// for.
type UnsupportedDistributionError struct {
	Distribution string
	Supported    []string
}

func (e *UnsupportedDistributionError) Error() string {
	return fmt.Sprintf("polyuq: unsupported distribution '%s'. Supported distributions: %s",
		e.Distribution, strings.Join(e.Supported, ", "))
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *UnsupportedDistributionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("distribution", e.Distribution).
		Strs("supported", e.Supported).
		Str("type", "UnsupportedDistributionError")
}

// NewUnsupportedDistributionError creates a new UnsupportedDistributionError
// with a stack trace.
func NewUnsupportedDistributionError(distribution string, supported []string) error {
	err := &UnsupportedDistributionError{Distribution: distribution, Supported: supported}
	return errors.WithStack(err)
}

// NumericalInstabilityError is returned when a computation produces NaN or
// Inf, or when an internal factorization fails to converge.
type NumericalInstabilityError struct {
	Op      string
	Values  []float64              // offending values, truncated for display
	Context map[string]interface{} // extra debugging context
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("polyuq: numerical instability detected in %s. Values: [%s]", e.Op, valStr)
}

// NewNumericalInstabilityError creates a new NumericalInstabilityError with
// a stack trace.
func NewNumericalInstabilityError(op string, values []float64) error {
	err := &NumericalInstabilityError{
		Op:      op,
		Values:  values,
		Context: make(map[string]interface{}),
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation receives no data.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix is returned when a linear solve encounters a
	// singular or numerically rank-deficient matrix.
	ErrSingularMatrix = New("singular matrix")
)
