package surd

import (
	"errors"
	"fmt"

	"github.com/surdlib/surd/internal/intmath"
)

// Error represents a failure detected while constructing or combining
// values. All errors are local, deterministic and fully recoverable by
// the caller; retrying with the same input yields the same error.
type Error struct {
	// Code identifies the error category.
	Code Code

	// Message is a human-readable description.
	Message string

	// Coeff, Rad and Index carry the offending unit triple for errors
	// raised while reducing a single unit. Zero for the others.
	Coeff int64
	Rad   int64
	Index int64
}

// Code categorizes errors.
type Code string

const (
	// CodeInvalidRoot indicates a zero index, an even index with a
	// negative radicand, or a negative index with a zero radicand.
	CodeInvalidRoot Code = "INVALID_ROOT"

	// CodeDivisionByZero indicates a denominator that reduces to zero,
	// or a division by the zero value.
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"

	// CodeInvalidArgument indicates input outside the accepted domain,
	// e.g. arithmetic over a nested real-number coefficient or a
	// non-finite float literal.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeComputationTooLarge indicates factorization or exponent work
	// exceeded a configured bound.
	CodeComputationTooLarge Code = "COMPUTATION_TOO_LARGE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Coeff != 0 || e.Rad != 0 || e.Index != 0 {
		return fmt.Sprintf("%s: %s (unit=%d·%d^(1/%d))", e.Code, e.Message, e.Coeff, e.Rad, e.Index)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidRoot reports whether err is an INVALID_ROOT error.
// Uses errors.As to handle wrapped errors.
func IsInvalidRoot(err error) bool { return hasCode(err, CodeInvalidRoot) }

// IsDivisionByZero reports whether err is a DIVISION_BY_ZERO error.
func IsDivisionByZero(err error) bool { return hasCode(err, CodeDivisionByZero) }

// IsInvalidArgument reports whether err is an INVALID_ARGUMENT error.
func IsInvalidArgument(err error) bool { return hasCode(err, CodeInvalidArgument) }

// IsComputationTooLarge reports whether err is a COMPUTATION_TOO_LARGE
// error.
func IsComputationTooLarge(err error) bool { return hasCode(err, CodeComputationTooLarge) }

func hasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func newInvalidRoot(msg string, u Unit) *Error {
	return &Error{Code: CodeInvalidRoot, Message: msg, Coeff: u.Coeff, Rad: u.Rad, Index: u.Index}
}

func newDivisionByZero(msg string) *Error {
	return &Error{Code: CodeDivisionByZero, Message: msg}
}

func newInvalidArgument(msg string) *Error {
	return &Error{Code: CodeInvalidArgument, Message: msg}
}

func newComputationTooLarge(msg string) *Error {
	return &Error{Code: CodeComputationTooLarge, Message: msg}
}

// wrapIntmath translates an internal/intmath sentinel into the public
// error type, keeping the helper layer free of this package's types.
func wrapIntmath(err error, context string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, intmath.ErrTooLarge):
		return newComputationTooLarge(context)
	case errors.Is(err, intmath.ErrNonFinite):
		return newInvalidArgument(context)
	default:
		return newInvalidArgument(context + ": " + err.Error())
	}
}
