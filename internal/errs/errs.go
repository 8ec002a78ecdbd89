// Package errs defines the three error kinds a pruner can raise, per the
// error handling design in spec §7.
package errs

import "fmt"

// ConfigurationError reports an invalid pruner construction argument: an
// unknown sense, a non-positive maxCuts other than -1, or an out-of-range
// variant parameter such as a decay lambda outside (0,1).
type ConfigurationError struct {
	Field string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Msg)
}

// NewConfigurationError builds a ConfigurationError for the named field.
func NewConfigurationError(field, msg string) *ConfigurationError {
	return &ConfigurationError{Field: field, Msg: msg}
}

// ShapeError reports inconsistent batch dimensions: rows(A') != len(b'),
// len(b') != len(isMyCut), a column count != d, or an index vector with an
// out-of-range entry.
type ShapeError struct {
	Op  string
	Msg string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape error: %s: %s", e.Op, e.Msg)
}

// NewShapeError builds a ShapeError for the named operation.
func NewShapeError(op, msg string) *ShapeError {
	return &ShapeError{Op: op, Msg: msg}
}

// InvariantViolation is an internal assertion failure — should be
// unreachable. Once raised from a Pruner, that instance is poisoned: every
// later call on it must return this same error without attempting further
// mutation.
type InvariantViolation struct {
	Check string
	Msg   string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation (%s): %s — pruner is poisoned", e.Check, e.Msg)
}

// NewInvariantViolation builds an InvariantViolation for the named check.
func NewInvariantViolation(check, msg string) *InvariantViolation {
	return &InvariantViolation{Check: check, Msg: msg}
}
