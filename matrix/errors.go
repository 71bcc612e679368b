// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines the package-level sentinel errors used across the matrix
// package, plus the one structured error type (MismatchError) that carries a
// dimension pair. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfRange indicates that an index (row or column) is outside the
	// declared dimensions. Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	// The concrete pair travels in a MismatchError wrapping this sentinel.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadCSR indicates that a CSR value handed to FromCSR violates the
	// compressed-sparse-row invariants (pointer monotonicity, column order,
	// bounds, or an explicit zero value).
	ErrBadCSR = errors.New("matrix: malformed CSR")
)

// MismatchError reports an operand dimension pair that is incompatible with
// the requested operation. It unwraps to ErrDimensionMismatch, so
// errors.Is(err, ErrDimensionMismatch) matches and errors.As recovers the
// concrete shapes for diagnostics.
type MismatchError struct {
	// ARows, ACols describe the left operand.
	ARows, ACols int

	// BRows, BCols describe the right operand.
	BRows, BCols int
}

// Error renders both shapes; the operation tag is added by the caller via
// the usual "Op: %w" wrapping.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("matrix: dimension mismatch: left is %dx%d, right is %dx%d",
		e.ARows, e.ACols, e.BRows, e.BCols)
}

// Unwrap links the structured error to the ErrDimensionMismatch sentinel.
func (e *MismatchError) Unwrap() error { return ErrDimensionMismatch }
