// Package codec reads and writes the plain-text sparse matrix format:
// a dimension header followed by one "(row, column, value)" tuple per
// non-zero entry.
//
// # What the format looks like
//
//	# optional comment lines, anywhere
//	rows=2
//	cols=3
//	(0, 1, 4)
//	(1, 2, -7)
//
// Decode also accepts the compact single-line header "2, 3" in place of
// the two rows=/cols= lines; Encode always emits the two-line form. Blank
// lines are ignored everywhere. Tuples may appear in any order — Encode
// re-emits them row-major, so encoded output is canonical: equal matrices
// produce byte-identical text, and Decode(Encode(m)) reproduces m.
//
// # Why strict
//
// Decode validates each tuple line in a fixed order — syntax, bounds,
// duplicate coordinate, explicit zero — and aborts on the first offence.
// A file that decodes is therefore a faithful sparse description: every
// coordinate in range, listed once, with a non-zero value. The error
// taxonomy mirrors the stages:
//
//   - ErrMalformedHeader / HeaderError — dimension declaration missing,
//     non-integer, or non-positive
//   - ErrMalformedEntry / EntryError — line fails the tuple grammar
//   - ErrOutOfBounds / BoundsError — coordinate outside declared dims
//   - ErrDuplicateEntry / DuplicateError — coordinate listed twice
//   - ErrExplicitZero / ZeroValueError — zero value listed explicitly
//
// Each detail type carries the 1-based line number (DuplicateError both of
// them) and unwraps to its sentinel, so errors.Is selects the kind and
// errors.As recovers the specifics.
//
// # Options
//
// WithCommentPrefix changes the comment marker (default "#") for both
// directions; WithHeaderNote makes Encode emit one comment line above the
// header. See options.go.
package codec
