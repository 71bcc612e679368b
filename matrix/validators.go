// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape checks here.
//  - Return plain sentinels (or MismatchError, which unwraps to the
//    ErrDimensionMismatch sentinel) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, and allocate only on failure.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → shape).
//  - Shape validators assume non-nil operands; composites enforce it.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns nil or a MismatchError carrying both shapes.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return &MismatchError{ARows: a.rows, ACols: a.cols, BRows: b.rows, BCols: b.cols}
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows (the contraction index
// both operands must share).
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns nil or a MismatchError carrying both shapes.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if a.cols != b.rows {
		return &MismatchError{ARows: a.rows, ACols: a.cols, BRows: b.rows, BCols: b.cols}
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (via MismatchError).
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return ValidateSameShape(a, b)
}

// ValidateBinaryMulCompatible – Composite: NotNil(a) → NotNil(b) → MulCompatible.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (via MismatchError).
// Complexity: O(1).
func ValidateBinaryMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinaryMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinaryMulCompatible", err)
	}

	return ValidateMulCompatible(a, b)
}
