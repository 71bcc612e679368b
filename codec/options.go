// SPDX-License-Identifier: MIT
// Package codec: functional options shared by Decode and Encode.
//
// The zero configuration is complete; options exist for the two knobs the
// format leaves open: the comment marker and an optional leading note on
// encoded output. Invalid option values panic at configuration time, so a
// bad prefix never reaches the parsing loop.

package codec

import "strings"

// DefaultCommentPrefix is the marker that starts a comment line. Lines
// whose trimmed text begins with it are skipped anywhere in the input.
const DefaultCommentPrefix = "#"

// Panic messages for invalid option values.
const (
	panicEmptyCommentPrefix = "codec: WithCommentPrefix: prefix must be non-empty"
	panicMultilineNote      = "codec: WithHeaderNote: note must be a single line"
)

// Options collects codec configuration. Construct via gatherOptions; the
// zero value is never used directly.
type Options struct {
	// commentPrefix marks comment lines on Decode and prefixes the header
	// note on Encode.
	commentPrefix string

	// headerNote, when non-empty, is emitted by Encode as a single comment
	// line before the header. Decode ignores it like any other comment.
	headerNote string
}

// Option mutates Options during construction.
type Option func(*Options)

// WithCommentPrefix overrides the comment marker. Both sides of a
// round-trip must agree on it: output encoded with a custom marker decodes
// only with the same marker. Panics if prefix is empty or whitespace-only.
func WithCommentPrefix(prefix string) Option {
	if strings.TrimSpace(prefix) == "" {
		panic(panicEmptyCommentPrefix)
	}

	return func(o *Options) { o.commentPrefix = prefix }
}

// WithHeaderNote makes Encode emit note as a comment line above the
// header. The empty note emits nothing. Panics if note spans lines.
func WithHeaderNote(note string) Option {
	if strings.ContainsRune(note, '\n') {
		panic(panicMultilineNote)
	}

	return func(o *Options) { o.headerNote = note }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		commentPrefix: DefaultCommentPrefix,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
