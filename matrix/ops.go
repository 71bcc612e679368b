// SPDX-License-Identifier: MIT
// File: ops.go
// Role: arithmetic engine — pure functions over two matrices.
//
// Every operation here validates fail-fast, never mutates an operand, and
// allocates exactly one fresh store for its result. Costs scale with the
// number of non-zero entries involved; no kernel ever scans the dense
// rows×cols coordinate space.
//
// Determinism:
//   - Add/Sub merge two canonical row-major sequences with a fixed
//     two-pointer schedule.
//   - Mul walks a's entries in canonical order and b's rows in CSR order.

package matrix

import (
	"fmt"
	"iter"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opNegate    = "Negate"
	opTranspose = "Transpose"
	opMulVec    = "MulVec"
	opFromCSR   = "FromCSR"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. The wrapper keeps a stable "Op: underlying" shape for
// uniform reporting across facades; callers still match with errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1} by merging the two
// canonical entry sequences with a two-pointer walk. Internal helper for
// Add/Sub to share validation, the merge schedule, and cancellation.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate the result store.
//   - Stage 2: pull both sequences; at each step emit the strictly
//     earlier coordinate, or — on a shared coordinate — the signed sum,
//     dropped when it cancels to zero.
//
// Behavior highlights:
//   - Entry visits O(nnz(a) + nnz(b)); the dense coordinate space is
//     never scanned.
//   - A coordinate whose signed sum is exactly zero is omitted from the
//     result (fill-in cancellation), preserving the store invariant.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opAdd/opSub).
//
// Complexity:
//   - Time O((na+nb) log(na+nb)) including canonical ordering,
//     Space O(na+nb) for the result.
func addSub(a, b *Matrix, sign int64, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := NewStore()

	nextA, stopA := iter.Pull(a.Entries())
	defer stopA()
	nextB, stopB := iter.Pull(b.Entries())
	defer stopB()

	ea, okA := nextA()
	eb, okB := nextB()
	for okA || okB {
		switch {
		case !okB || (okA && posLess(ea, eb)):
			// a holds the strictly earlier coordinate (or b is exhausted).
			out.Set(ea.Row, ea.Col, ea.Val)
			ea, okA = nextA()
		case !okA || posLess(eb, ea):
			// b holds the strictly earlier coordinate (or a is exhausted).
			out.Set(eb.Row, eb.Col, sign*eb.Val)
			eb, okB = nextB()
		default:
			// Shared coordinate: signed sum, dropped when it cancels.
			if sum := ea.Val + sign*eb.Val; sum != 0 {
				out.Set(ea.Row, ea.Col, sum)
			}
			ea, okA = nextA()
			eb, okB = nextB()
		}
	}

	return newFromStore(a.rows, a.cols, out), nil
}

// Add returns a + b as a new Matrix; operands are never mutated.
//
// Requires identical shapes. Coordinates present in either operand are
// merged; a coordinate whose sum is zero is omitted from the result.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (shape mismatch;
//     the MismatchError detail carries both shapes).
//
// Complexity:
//   - Time O((na+nb) log(na+nb)), Space O(na+nb).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b as a new Matrix; operands are never mutated.
// Identical to Add with b's values negated: same shape requirement, same
// cancellation rule, same costs.
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a·b as a new Matrix; operands are never
// mutated.
//
// Implementation:
//   - Stage 1: ValidateBinaryMulCompatible(a, b) — a.Cols must equal
//     b.Rows (the contraction index).
//   - Stage 2: group b's entries by row via ToCSR (one pass).
//   - Stage 3: for each a-entry (i, k, v), walk b's row k; accumulate
//     v·w into the result accumulator at (i, j) for every (k, j, w).
//   - Stage 4: the accumulator drops coordinates whose sum cancels to
//     zero, so the result holds only true non-zeros.
//
// Behavior highlights:
//   - Cost is proportional to the number of (a-entry, b-entry) pairs that
//     share a contraction index — the sparse·sparse access pattern — never
//     the dense rows×inner×cols triple loop.
//   - Result shape is a.Rows × b.Cols.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opMul).
//
// Complexity:
//   - Time O(nnz(b) log nnz(b) + b.Rows + pairs), Space O(nnz(b) + result).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateBinaryMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Group b by row once; RowPtr gives each contraction row in O(1).
	bc := b.ToCSR()

	acc := NewStore()
	var idx int
	for ea := range a.Entries() {
		for idx = bc.RowPtr[ea.Col]; idx < bc.RowPtr[ea.Col+1]; idx++ {
			acc.Add(ea.Row, bc.ColInd[idx], ea.Val*bc.Val[idx])
		}
	}

	return newFromStore(a.rows, b.cols, acc), nil
}

// scaleBy computes out = alpha*a. Internal helper for Scale/Negate.
// alpha == 0 short-circuits to the empty matrix: every product cancels.
func scaleBy(a *Matrix, alpha int64, opTag string) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := NewStore()
	if alpha != 0 {
		for e := range a.Entries() {
			out.Set(e.Row, e.Col, e.Val*alpha)
		}
	}

	return newFromStore(a.rows, a.cols, out), nil
}

// Scale returns alpha·a as a new Matrix; a is never mutated. Scaling by
// zero yields the empty matrix of the same shape.
// Complexity: O(n log n), Space O(n).
func Scale(a *Matrix, alpha int64) (*Matrix, error) { return scaleBy(a, alpha, opScale) }

// Negate returns -a as a new Matrix: every value multiplied by -1.
// Add(a, Negate(a)) cancels to the empty matrix.
func Negate(a *Matrix) (*Matrix, error) { return scaleBy(a, -1, opNegate) }

// Transpose returns aᵀ as a new Matrix (shape cols×rows, every entry's
// coordinates flipped); a is never mutated.
//
// Errors:
//   - ErrNilMatrix (wrapped with opTranspose).
//
// Complexity:
//   - Time O(n log n), Space O(n).
func Transpose(a *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out := NewStore()
	for e := range a.Entries() {
		out.Set(e.Col, e.Row, e.Val)
	}

	return newFromStore(a.cols, a.rows, out), nil
}
