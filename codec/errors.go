// SPDX-License-Identifier: MIT
// Package codec: sentinel error set plus the structured detail types.
// Every Decode failure matches exactly one sentinel via errors.Is, and
// carries a detail struct recoverable via errors.As with the offending
// line number, raw text, coordinate, or bound. Tests MUST assert through
// errors.Is/errors.As, never by string comparison.

package codec

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "codec: ..." for consistency and to allow
// easy grepping across logs. The detail types below render the full
// diagnostic themselves; drivers can print err.Error() verbatim.

var (
	// ErrMalformedHeader indicates the rows/cols declaration is missing,
	// non-integer, or non-positive.
	ErrMalformedHeader = errors.New("codec: malformed header")

	// ErrMalformedEntry indicates an entry line that does not match the
	// (int, int, int) tuple grammar exactly — no coercion, no tolerance
	// for extra or missing fields.
	ErrMalformedEntry = errors.New("codec: malformed entry")

	// ErrOutOfBounds indicates a parsed coordinate outside the dimensions
	// the header declared.
	ErrOutOfBounds = errors.New("codec: coordinate out of bounds")

	// ErrDuplicateEntry indicates the same coordinate listed on two lines;
	// a well-formed sparse file lists each non-zero cell at most once.
	ErrDuplicateEntry = errors.New("codec: duplicate coordinate")

	// ErrExplicitZero indicates a zero value explicitly listed; zeros are
	// implicit by definition, their presence means the writer's invariant
	// is broken.
	ErrExplicitZero = errors.New("codec: explicit zero entry")
)

// Axis names used by BoundsError.Axis.
const (
	AxisRow = "row"
	AxisCol = "column"
)

// HeaderError reports a malformed rows/cols declaration. Line is 1-based;
// for a missing declaration it points just past the last scanned line and
// Text is empty.
type HeaderError struct {
	Line   int
	Text   string
	Reason string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("codec: line %d: malformed header %q: %s", e.Line, e.Text, e.Reason)
}

func (e *HeaderError) Unwrap() error { return ErrMalformedHeader }

// EntryError reports a line that failed the (int, int, int) tuple grammar,
// carrying the 1-based line number and the raw (trimmed) text.
type EntryError struct {
	Line int
	Text string
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("codec: line %d: malformed entry %q: want (int, int, int)", e.Line, e.Text)
}

func (e *EntryError) Unwrap() error { return ErrMalformedEntry }

// BoundsError reports a parsed coordinate outside the declared dimensions.
// Axis is AxisRow or AxisCol, Value the offending coordinate, Limit the
// declared (exclusive) bound.
type BoundsError struct {
	Line  int
	Axis  string
	Value int
	Limit int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("codec: line %d: %s %d outside 0..%d", e.Line, e.Axis, e.Value, e.Limit-1)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// DuplicateError reports a coordinate listed twice, naming both 1-based
// line numbers.
type DuplicateError struct {
	Row, Col  int
	FirstLine int
	Line      int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("codec: line %d: coordinate (%d, %d) already listed at line %d",
		e.Line, e.Row, e.Col, e.FirstLine)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicateEntry }

// ZeroValueError reports an explicitly listed zero value.
type ZeroValueError struct {
	Row, Col int
	Line     int
}

func (e *ZeroValueError) Error() string {
	return fmt.Sprintf("codec: line %d: explicit zero at (%d, %d)", e.Line, e.Row, e.Col)
}

func (e *ZeroValueError) Unwrap() error { return ErrExplicitZero }
