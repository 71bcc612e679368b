// Package matrix stores two-dimensional integer matrices sparsely —
// only non-zero cells occupy memory — and runs arithmetic whose cost
// follows the non-zero count, never rows×columns.
//
// What:
//
//   - Store: coordinate → value dictionary; setting zero deletes, absence
//     reads as zero, iteration is canonical row-major via iter.Seq.
//   - Matrix: declared dimensions around a Store; At/Set police ranges,
//     dimensions are immutable after construction.
//   - Add / Sub: two-pointer merge over both canonical sequences with
//     fill-in cancellation (a sum of zero leaves no entry).
//   - Mul: contraction-index grouping — b's entries grouped by row
//     through CSR, a's entries streamed once; cost follows the matching
//     entry pairs, not the dense triple loop.
//   - Scale / Negate / Transpose: single-pass derivations.
//   - CSR: compressed-sparse-row export, validated reconstruction, and
//     matrix–vector products over flat slices.
//
// Why:
//
//   - Adjacency-style data: most cells empty, arithmetic still needed.
//   - Deterministic pipelines: canonical order makes serialization and
//     diffs stable across runs.
//   - A container honest about zeros: writing zero erases, cancellation
//     never leaves phantom entries behind.
//
// Complexity:
//
//   - Get/Set/Add:  O(1) expected.
//   - Entries:      O(n log n) per ranging (canonical sort), Memory O(n).
//   - Add/Sub:      O((na+nb) log(na+nb)), Memory O(na+nb).
//   - Mul:          O(nnz(b) log nnz(b) + b.Rows + matching pairs).
//   - ToCSR:        O(n log n + rows); MulVec: O(n + rows).
//
// Concurrency:
//
//   - Operations build new matrices and never mutate operands, so any
//     number of goroutines may read or operate on shared matrices
//     concurrently. Set is the single mutation path and requires
//     exclusive access to its receiver.
//
// Errors:
//
//   - ErrInvalidDimensions: constructor given a non-positive dimension.
//   - ErrIndexOutOfRange: At/Set coordinate outside declared dimensions.
//   - ErrDimensionMismatch: operand shapes incompatible with the requested
//     operation; errors.As(&MismatchError{}) recovers both shapes.
//   - ErrNilMatrix: nil operand or receiver.
//   - ErrBadCSR: FromCSR input violating the compressed-row invariants.
//
// The package never logs and never retries; every failure surfaces to the
// caller with the detail needed for an actionable message.
//
// Values are int64 and arithmetic wraps on overflow, like any Go integer;
// callers needing headroom must bound their inputs.
package matrix
