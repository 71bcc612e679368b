// SPDX-License-Identifier: MIT
// Package matrix: shared value types for the sparse container.
// This file declares Entry (the public coordinate/value triple), the
// internal coord key, and the canonical row-major ordering helpers used
// by iteration, serialization, and the merge kernels.

package matrix

// Entry is one non-zero cell of a sparse matrix: value Val at (Row, Col).
//
// An Entry is never materialized for a zero value; the zero cells of a
// matrix exist only implicitly. Coordinates are 0-based.
type Entry struct {
	// Row is the 0-based row coordinate.
	Row int

	// Col is the 0-based column coordinate.
	Col int

	// Val is the stored value; never zero for a stored entry.
	Val int64
}

// coord is the map key of the entry store: one (row, col) cell address.
type coord struct {
	row, col int
}

// posLess reports whether entry a precedes entry b in canonical row-major
// order (ascending row, then ascending column). It is the single ordering
// rule behind Entries, Encode determinism, and the merge kernels.
// Complexity: O(1)
func posLess(a, b Entry) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}

	return a.Col < b.Col
}
