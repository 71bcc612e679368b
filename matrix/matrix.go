// matrix.go defines Matrix: declared dimensions wrapped around a Store.
// A Matrix polices coordinate ranges and delegates element storage to the
// store underneath. Dimensions are fixed at construction; arithmetic never
// mutates an operand, it always builds a new Matrix.

package matrix

import (
	"fmt"
	"iter"
)

// Matrix is a sparse rows×cols integer matrix.
//
// Every stored coordinate satisfies 0 <= row < rows and 0 <= col < cols.
// Dimensions are immutable after construction. Concurrent readers need no
// locking; Set requires exclusive access (see the package documentation).
type Matrix struct {
	rows, cols int
	data       *Store
}

// New returns an empty rows×cols matrix.
// Returns ErrInvalidDimensions unless both dimensions are positive.
// Complexity: O(1)
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d, %d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Matrix{rows: rows, cols: cols, data: NewStore()}, nil
}

// NewFromEntries returns a rows×cols matrix populated from entries.
// Zero-valued entries are skipped (Set semantics); a later entry for an
// already-seen coordinate overwrites the earlier one. Returns
// ErrIndexOutOfRange if any coordinate falls outside the declared
// dimensions.
// Complexity: O(len(entries))
func NewFromEntries(rows, cols int, entries []Entry) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	var e Entry
	for _, e = range entries {
		if !m.inRange(e.Row, e.Col) {
			return nil, indexErrorf("NewFromEntries", e.Row, e.Col, rows, cols)
		}
		m.data.Set(e.Row, e.Col, e.Val)
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix (ones on the diagonal).
// Returns ErrInvalidDimensions unless n is positive.
// Complexity: O(n)
func NewIdentity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data.Set(i, i, 1)
	}

	return m, nil
}

// newFromStore wraps an already-validated store; internal to the
// arithmetic kernels, which guarantee every coordinate is in range.
func newFromStore(rows, cols int, s *Store) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: s}
}

// indexErrorf builds the uniform out-of-range diagnostic for direct
// accessors: operation, offending coordinate, and both bounds.
func indexErrorf(op string, row, col, rows, cols int) error {
	return fmt.Errorf("%s(%d, %d) outside %dx%d: %w", op, row, col, rows, cols, ErrIndexOutOfRange)
}

// inRange reports whether (row, col) lies inside the declared dimensions.
func (m *Matrix) inRange(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Rows returns the declared row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the declared column count.
func (m *Matrix) Cols() int { return m.cols }

// Dims returns both declared dimensions.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the value at (row, col); 0 for an absent in-range coordinate.
// Returns ErrIndexOutOfRange when the coordinate falls outside the
// declared dimensions.
// Complexity: O(1) expected
func (m *Matrix) At(row, col int) (int64, error) {
	if !m.inRange(row, col) {
		return 0, indexErrorf("At", row, col, m.rows, m.cols)
	}

	return m.data.Get(row, col), nil
}

// Set stores v at (row, col); storing zero clears the cell. Returns
// ErrIndexOutOfRange when the coordinate falls outside the declared
// dimensions. Requires exclusive access.
// Complexity: O(1) expected
func (m *Matrix) Set(row, col int, v int64) error {
	if !m.inRange(row, col) {
		return indexErrorf("Set", row, col, m.rows, m.cols)
	}
	m.data.Set(row, col, v)

	return nil
}

// NonZeroCount returns the number of stored (non-zero) entries.
// Complexity: O(1)
func (m *Matrix) NonZeroCount() int { return m.data.Len() }

// Entries returns the stored entries in canonical row-major order; see
// Store.Entries for the sequence contract.
func (m *Matrix) Entries() iter.Seq[Entry] {
	return m.data.Entries()
}

// Clone returns an independent deep copy. Cloning nil yields nil.
// Complexity: O(n)
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}

	return &Matrix{rows: m.rows, cols: m.cols, data: m.data.Clone()}
}

// Equal reports structural equality: same dimensions, same non-zero entry
// set, same values. This is the comparison behind the codec round-trip
// guarantee.
// Complexity: O(n log n)
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols || m.data.Len() != o.data.Len() {
		return false
	}
	for e := range m.Entries() {
		if o.data.Get(e.Row, e.Col) != e.Val {
			return false
		}
	}

	return true
}

// String returns a compact debug form: shape and entry count.
func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix(%dx%d, nnz=%d)", m.rows, m.cols, m.data.Len())
}
