// Round-trip law: Decode(Encode(m)) reproduces m, and Decode → Encode
// normalizes any well-formed input to canonical text.

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsix/codec"
	"github.com/katalvlaran/sparsix/matrix"
)

// TestRoundTripFixed checks the law on a hand-built matrix with negative
// values and an empty row.
func TestRoundTripFixed(t *testing.T) {
	m := mustFromEntries(t, 3, 3, []matrix.Entry{
		{Row: 0, Col: 2, Val: 11},
		{Row: 2, Col: 0, Val: -4},
		{Row: 2, Col: 2, Val: 1},
	})

	text, err := codec.Encode(m)
	require.NoError(t, err)

	back, err := codec.Decode(text)
	require.NoError(t, err)
	require.True(t, m.Equal(back), "decode(encode(m)) differs from m:\n%s", text)
}

// TestRoundTripRandom repeats the law over seeded random matrices of
// assorted shapes and densities.
func TestRoundTripRandom(t *testing.T) {
	shapes := []struct{ rows, cols, nnz int }{
		{rows: 1, cols: 1, nnz: 1},
		{rows: 5, cols: 5, nnz: 10},
		{rows: 8, cols: 3, nnz: 12},
		{rows: 3, cols: 17, nnz: 25},
		{rows: 40, cols: 40, nnz: 200},
	}
	for seed := int64(1); seed <= 5; seed++ {
		for _, sh := range shapes {
			m := randSparse(seed, sh.rows, sh.cols, sh.nnz)

			text, err := codec.Encode(m)
			require.NoError(t, err)

			back, err := codec.Decode(text)
			require.NoError(t, err)
			require.True(t, m.Equal(back),
				"seed %d shape %dx%d nnz %d", seed, sh.rows, sh.cols, sh.nnz)
		}
	}
}

// TestRoundTripCustomPrefix keeps the law when both directions share a
// custom comment marker and the output carries a note.
func TestRoundTripCustomPrefix(t *testing.T) {
	m := mustFromEntries(t, 2, 2, []matrix.Entry{{Row: 1, Col: 0, Val: 6}})

	text, err := codec.Encode(m,
		codec.WithHeaderNote("written by the nightly job"),
		codec.WithCommentPrefix("//"))
	require.NoError(t, err)

	back, err := codec.Decode(text, codec.WithCommentPrefix("//"))
	require.NoError(t, err)
	require.True(t, m.Equal(back))
}

// TestDecodeEncodeNormalizes canonicalizes scrambled but well-formed
// input: compact header, shuffled tuples, noise lines.
func TestDecodeEncodeNormalizes(t *testing.T) {
	const scrambled = `# scratch file
2, 3

(1, 2, -7)
(0, 1, 4)
`
	m, err := codec.Decode(scrambled)
	require.NoError(t, err)

	text, err := codec.Encode(m)
	require.NoError(t, err)
	require.Equal(t, "rows=2\ncols=3\n(0, 1, 4)\n(1, 2, -7)\n", text)
}
