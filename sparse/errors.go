// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every public function returns one of these sentinels, usually wrapped with
// the failing operation as a prefix. Tests and callers MUST match them via
// errors.Is. Panics are reserved for invalid option values (programmer error).

package sparse

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "sparse: ..." so the origin is obvious in
// CLI output and logs. Wrap at call sites with sparseErrorf(tag, ErrX).
var (
	// ErrNotFound is returned when an input source cannot be opened or read.
	ErrNotFound = errors.New("sparse: input not found")

	// ErrFormat is returned when the header or an element tuple does not
	// conform to the text format (wrong arity, non-integer, bad literal).
	ErrFormat = errors.New("sparse: wrong format")

	// ErrDimensionMismatch indicates incompatible operand shapes: Add/Subtract
	// with different shapes, or Multiply where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrIO is returned when a destination cannot be created or written.
	ErrIO = errors.New("sparse: write failed")

	// ErrBadShape is returned by New for negative dimensions.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange marks a parsed coordinate outside the declared extent.
	// Only produced when bounds checking is enabled (WithBoundsCheck).
	ErrOutOfRange = errors.New("sparse: coordinate out of range")

	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrUnknownOperation is returned by ParseOperation and Apply for
	// selectors outside {Addition, Subtraction, Multiplication}.
	ErrUnknownOperation = errors.New("sparse: unknown operation")
)

// sparseErrorf wraps err with a tag naming the failing operation.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// lineErrorf wraps a format failure with its 1-based line number.
func lineErrorf(tag string, line int, err error, detail string) error {
	return fmt.Errorf("%s: line %d: %w: %s", tag, line, err, detail)
}
