// Package errors provides error handling for idlgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := load(); err != nil {
//	    return errors.Wrap(err, "failed to load model")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "move the types into one module")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf     = crdb.AssertionFailedf
	HasAssertionFailure  = crdb.HasAssertionFailure
	IsAssertionFailure   = crdb.IsAssertionFailure
	WithAssertionFailure = crdb.WithAssertionFailure
)

// Common sentinel errors shared by the loaders and commands.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidInput indicates a model or configuration file that cannot be used as given
	ErrInvalidInput = New("invalid input")

	// ErrUnsupportedFormat indicates a file extension or format version we cannot read
	ErrUnsupportedFormat = New("unsupported format")

	// ErrDrift indicates generated output differs from the committed baseline
	ErrDrift = New("output differs from baseline")
)

// IsInvalidInputError checks if an error is or wraps ErrInvalidInput
func IsInvalidInputError(err error) bool {
	return err != nil && Is(err, ErrInvalidInput)
}

// NewInvalidInputError creates an invalid-input error with a formatted message
func NewInvalidInputError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidInput, Newf(format, args...).Error())
}
