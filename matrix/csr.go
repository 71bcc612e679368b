// csr.go provides the compressed-sparse-row view of a Matrix: three flat
// slices replacing the coordinate dictionary. CSR is the row-grouping
// structure the Mul kernel contracts over, and the natural hand-off format
// for numeric code that wants slices instead of a map.
//
// Layout, for a matrix with nnz stored entries:
//
//	RowPtr — len Rows+1; row i occupies positions RowPtr[i]..RowPtr[i+1]-1
//	ColInd — len nnz; column of each entry, ascending within a row
//	Val    — len nnz; the entry values, never zero

package matrix

import "fmt"

// CSR is the compressed-sparse-row form of a sparse matrix.
type CSR struct {
	// Rows, Cols are the declared dimensions of the source matrix.
	Rows, Cols int

	// RowPtr holds, for each row, the offset of its first entry in
	// ColInd/Val; RowPtr[Rows] equals the total entry count.
	RowPtr []int

	// ColInd holds the column coordinate of every entry, row by row,
	// ascending inside each row.
	ColInd []int

	// Val holds the entry values in the same order as ColInd.
	Val []int64
}

// ToCSR exports the matrix in compressed-sparse-row form. The export is
// canonical: rows ascending, columns ascending within each row, so two
// equal matrices always produce identical CSR slices.
// Complexity: O(n log n + rows), Space O(n + rows)
func (m *Matrix) ToCSR() *CSR {
	n := m.data.Len()
	c := &CSR{
		Rows:   m.rows,
		Cols:   m.cols,
		RowPtr: make([]int, m.rows+1),
		ColInd: make([]int, 0, n),
		Val:    make([]int64, 0, n),
	}

	// Canonical order arrives row-major, so appending fills each row
	// contiguously; count per row first, then prefix-sum into offsets.
	for e := range m.Entries() {
		c.ColInd = append(c.ColInd, e.Col)
		c.Val = append(c.Val, e.Val)
		c.RowPtr[e.Row+1]++
	}
	for i := 0; i < m.rows; i++ {
		c.RowPtr[i+1] += c.RowPtr[i]
	}

	return c
}

// FromCSR reconstructs a Matrix from a CSR value, validating every
// compressed-sparse-row invariant on the way in.
//
// Errors:
//   - ErrNilMatrix — c is nil.
//   - ErrInvalidDimensions — non-positive shape.
//   - ErrBadCSR — slice lengths disagree, RowPtr is not a monotone prefix
//     table, a column is out of range or out of order, or a value is an
//     explicit zero.
//
// Complexity: O(n + rows)
func FromCSR(c *CSR) (*Matrix, error) {
	if c == nil {
		return nil, matrixErrorf(opFromCSR, ErrNilMatrix)
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return nil, matrixErrorf(opFromCSR, ErrInvalidDimensions)
	}
	if len(c.RowPtr) != c.Rows+1 || c.RowPtr[0] != 0 {
		return nil, matrixErrorf(opFromCSR, fmt.Errorf("row pointers must be a %d-long table starting at 0: %w", c.Rows+1, ErrBadCSR))
	}
	if len(c.ColInd) != len(c.Val) || c.RowPtr[c.Rows] != len(c.Val) {
		return nil, matrixErrorf(opFromCSR, fmt.Errorf("column/value lengths disagree with RowPtr[%d]: %w", c.Rows, ErrBadCSR))
	}

	// Pointer table first: with RowPtr[0]==0, RowPtr[Rows]==len(Val), and
	// no decreases, every row range below is in bounds.
	var row, idx, col int
	for row = 0; row < c.Rows; row++ {
		if c.RowPtr[row+1] < c.RowPtr[row] {
			return nil, matrixErrorf(opFromCSR, fmt.Errorf("row %d: pointers decrease: %w", row, ErrBadCSR))
		}
	}

	m, err := New(c.Rows, c.Cols)
	if err != nil {
		return nil, matrixErrorf(opFromCSR, err)
	}

	for row = 0; row < c.Rows; row++ {
		for idx = c.RowPtr[row]; idx < c.RowPtr[row+1]; idx++ {
			col = c.ColInd[idx]
			if col < 0 || col >= c.Cols {
				return nil, matrixErrorf(opFromCSR, fmt.Errorf("row %d: column %d outside 0..%d: %w", row, col, c.Cols-1, ErrBadCSR))
			}
			if idx > c.RowPtr[row] && col <= c.ColInd[idx-1] {
				return nil, matrixErrorf(opFromCSR, fmt.Errorf("row %d: columns not strictly ascending: %w", row, ErrBadCSR))
			}
			if c.Val[idx] == 0 {
				return nil, matrixErrorf(opFromCSR, fmt.Errorf("row %d, column %d: explicit zero value: %w", row, col, ErrBadCSR))
			}
			m.data.Set(row, col, c.Val[idx])
		}
	}

	return m, nil
}

// MulVec returns the matrix–vector product c·x as a fresh slice of length
// c.Rows; x is never mutated.
//
// Errors:
//   - ErrNilMatrix — nil receiver or nil x.
//   - ErrDimensionMismatch — len(x) differs from c.Cols.
//
// Complexity: O(n + rows)
func (c *CSR) MulVec(x []int64) ([]int64, error) {
	if c == nil || x == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if len(x) != c.Cols {
		return nil, matrixErrorf(opMulVec, fmt.Errorf("vector length %d, need %d: %w", len(x), c.Cols, ErrDimensionMismatch))
	}

	y := make([]int64, c.Rows)
	var row, idx int
	for row = 0; row < c.Rows; row++ {
		for idx = c.RowPtr[row]; idx < c.RowPtr[row+1]; idx++ {
			y[row] += c.Val[idx] * x[c.ColInd[idx]]
		}
	}

	return y, nil
}
