// SPDX-License-Identifier: MIT
// File: codec/encode.go
// Role: Matrix → text direction of the codec: canonical two-line header
//       followed by one tuple per non-zero entry in row-major order.

package codec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sparsix/matrix"
)

const opEncode = "Encode"

// approxBytesPerEntry sizes the output builder; tuples of small integers
// fit well under it.
const approxBytesPerEntry = 24

// Encode renders m in the sparse tuple format:
//
//	rows=<R>
//	cols=<C>
//	(row, column, value)   — one line per entry, row-major
//
// The output is canonical: equal matrices encode to identical text, and
// Decode(Encode(m)) reproduces m exactly. With WithHeaderNote a single
// comment line precedes the header. Returns matrix.ErrNilMatrix (wrapped)
// when m is nil.
//
// Complexity: O(nnz log nnz) for the ordering pass inside Entries.
func Encode(m *matrix.Matrix, opts ...Option) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", fmt.Errorf("%s: %w", opEncode, err)
	}
	o := gatherOptions(opts...)

	var sb strings.Builder
	sb.Grow(32 + approxBytesPerEntry*m.NonZeroCount())

	if o.headerNote != "" {
		sb.WriteString(o.commentPrefix)
		sb.WriteByte(' ')
		sb.WriteString(o.headerNote)
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "rows=%d\n", m.Rows())
	fmt.Fprintf(&sb, "cols=%d\n", m.Cols())
	for e := range m.Entries() {
		fmt.Fprintf(&sb, "(%d, %d, %d)\n", e.Row, e.Col, e.Val)
	}

	return sb.String(), nil
}
