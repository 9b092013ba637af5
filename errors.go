package rex

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by this package wraps one of these,
// so callers can classify failures with errors.Is.
var (
	// ErrInvalidQuantifier indicates a malformed or semantically invalid
	// repetition: negative bounds, min greater than max, an exactly-zero
	// count, or a quantifier applied to a zero-width assertion.
	ErrInvalidQuantifier = errors.New("invalid quantifier")

	// ErrInvalidArgument indicates an argument of the wrong shape, such as
	// a zero-argument Join or a nil lookaround Source.
	ErrInvalidArgument = errors.New("invalid argument")
)

// QuantifierError reports an invalid repetition request. Op names the
// operation that rejected it; Min and Max carry the requested bounds where
// the operation had any.
type QuantifierError struct {
	Op     string
	Min    int
	Max    int
	Reason string
}

// Error implements the error interface.
func (e *QuantifierError) Error() string {
	return fmt.Sprintf("rex: %s: %s", e.Op, e.Reason)
}

// Unwrap returns ErrInvalidQuantifier so errors.Is can classify the failure.
func (e *QuantifierError) Unwrap() error {
	return ErrInvalidQuantifier
}

// ArgumentError reports an argument of an unacceptable shape. Op names the
// operation; Reason describes what would have been accepted.
type ArgumentError struct {
	Op     string
	Reason string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("rex: %s: %s", e.Op, e.Reason)
}

// Unwrap returns ErrInvalidArgument so errors.Is can classify the failure.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
