// SPDX-License-Identifier: MIT
// File: codec/decode.go
// Role: Text → Matrix direction of the codec: line scanner, header
//       recognition (both declaration forms), tuple grammar, and the
//       fail-fast validation chain.

package codec

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsix/matrix"
)

// opDecode tags wrapped errors raised outside the structured detail set.
const opDecode = "Decode"

// cell keys the duplicate-coordinate table during Decode.
type cell struct{ row, col int }

// Decode parses text in the sparse tuple format into a Matrix.
//
// The grammar, blank and comment lines aside:
//
//	rows=<R>        (or a single "R, C" line)
//	cols=<C>
//	(row, column, value)   — zero or more tuple lines
//
// Validation is fail-fast and per line, in a fixed order: tuple syntax,
// then bounds against the declared dimensions, then duplicate coordinates,
// then explicit zeros. The first offence aborts with a detail error from
// this package; no partially populated Matrix escapes.
//
// Complexity: O(L) over input lines; O(nnz) memory.
func Decode(input string, opts ...Option) (*matrix.Matrix, error) {
	o := gatherOptions(opts...)

	sc := bufio.NewScanner(strings.NewReader(input))
	ln := 0 // 1-based after the first Scan; counts every physical line

	// Stage 1: dimensions.
	rows, cols, err := scanHeader(sc, &ln, o)
	if err != nil {
		return nil, err
	}

	m, err := matrix.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecode, err)
	}

	// Stage 2: tuple lines, validated in declaration order.
	seen := make(map[cell]int)
	for {
		line, n, ok := nextSignificant(sc, &ln, o)
		if !ok {
			break
		}

		row, col, val, tupleOK := parseTuple(line)
		if !tupleOK {
			return nil, &EntryError{Line: n, Text: line}
		}
		if row < 0 || row >= rows {
			return nil, &BoundsError{Line: n, Axis: AxisRow, Value: row, Limit: rows}
		}
		if col < 0 || col >= cols {
			return nil, &BoundsError{Line: n, Axis: AxisCol, Value: col, Limit: cols}
		}
		if first, dup := seen[cell{row, col}]; dup {
			return nil, &DuplicateError{Row: row, Col: col, FirstLine: first, Line: n}
		}
		if val == 0 {
			return nil, &ZeroValueError{Row: row, Col: col, Line: n}
		}

		seen[cell{row, col}] = n
		if err = m.Set(row, col, val); err != nil {
			return nil, fmt.Errorf("%s: %w", opDecode, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opDecode, err)
	}

	return m, nil
}

// scanHeader consumes the dimension declaration in either form and returns
// the validated rows and cols.
func scanHeader(sc *bufio.Scanner, ln *int, o Options) (rows, cols int, err error) {
	line, n, ok := nextSignificant(sc, ln, o)
	if !ok {
		if scErr := sc.Err(); scErr != nil {
			return 0, 0, fmt.Errorf("%s: %w", opDecode, scErr)
		}

		return 0, 0, &HeaderError{Line: *ln + 1, Reason: "rows/cols declaration missing"}
	}

	// Two-line form: rows=<R>, then cols=<C> on the next significant line.
	if after, found := strings.CutPrefix(line, "rows="); found {
		if rows, err = parseDim(after, n, line, "rows"); err != nil {
			return 0, 0, err
		}

		line2, n2, ok2 := nextSignificant(sc, ln, o)
		if !ok2 {
			if scErr := sc.Err(); scErr != nil {
				return 0, 0, fmt.Errorf("%s: %w", opDecode, scErr)
			}

			return 0, 0, &HeaderError{Line: *ln + 1, Reason: "cols declaration missing"}
		}
		after2, found2 := strings.CutPrefix(line2, "cols=")
		if !found2 {
			return 0, 0, &HeaderError{Line: n2, Text: line2, Reason: "expected cols=<C>"}
		}
		if cols, err = parseDim(after2, n2, line2, "cols"); err != nil {
			return 0, 0, err
		}

		return rows, cols, nil
	}

	// One-line form: "R, C".
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return 0, 0, &HeaderError{Line: n, Text: line, Reason: `expected rows=<R> or "R, C"`}
	}
	if rows, err = parseDim(fields[0], n, line, "rows"); err != nil {
		return 0, 0, err
	}
	if cols, err = parseDim(fields[1], n, line, "cols"); err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}

// parseDim parses one dimension field and enforces positivity.
func parseDim(raw string, line int, text, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &HeaderError{Line: line, Text: text, Reason: name + " is not an integer"}
	}
	if v <= 0 {
		return 0, &HeaderError{Line: line, Text: text, Reason: fmt.Sprintf("%s must be > 0, got %d", name, v)}
	}

	return v, nil
}

// nextSignificant advances to the next line that is neither blank nor a
// comment, returning its trimmed text and 1-based number. ok is false once
// the input is exhausted. ln counts every physical line scanned, so
// reported numbers match the source text.
func nextSignificant(sc *bufio.Scanner, ln *int, o Options) (line string, n int, ok bool) {
	for sc.Scan() {
		*ln++
		line = strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, o.commentPrefix) {
			continue
		}

		return line, *ln, true
	}

	return "", 0, false
}

// parseTuple matches "(row, column, value)" with exactly three integer
// fields. ok reports whether line satisfies the grammar; there is no
// partial result.
func parseTuple(line string) (row, col int, val int64, ok bool) {
	inner, found := strings.CutPrefix(line, "(")
	if !found {
		return 0, 0, 0, false
	}
	inner, found = strings.CutSuffix(inner, ")")
	if !found {
		return 0, 0, 0, false
	}

	fields := strings.Split(inner, ",")
	if len(fields) != 3 {
		return 0, 0, 0, false
	}

	var err error
	if row, err = strconv.Atoi(strings.TrimSpace(fields[0])); err != nil {
		return 0, 0, 0, false
	}
	if col, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
		return 0, 0, 0, false
	}
	if val, err = strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64); err != nil {
		return 0, 0, 0, false
	}

	return row, col, val, true
}
