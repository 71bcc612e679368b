// SPDX-License-Identifier: MIT
// Shared scaffolding for package matrix_test.
//
// Keep assertions out of here except for construction failures; tests
// decide what to verify, helpers only build fixtures deterministically.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsix/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- Construction helpers ----------

// mustNew builds an empty rows×cols matrix, failing the test on error.
func mustNew(t *testing.T, rows, cols int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(rows, cols)
	require.NoError(t, err, "New(%d, %d)", rows, cols)

	return m
}

// mustFromEntries builds a populated matrix, failing the test on error.
func mustFromEntries(t *testing.T, rows, cols int, entries []matrix.Entry) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewFromEntries(rows, cols, entries)
	require.NoError(t, err, "NewFromEntries(%d, %d, %v)", rows, cols, entries)

	return m
}

// collect drains a matrix's canonical sequence into a slice for order and
// content assertions.
func collect(m *matrix.Matrix) []matrix.Entry {
	out := make([]matrix.Entry, 0, m.NonZeroCount())
	for e := range m.Entries() {
		out = append(out, e)
	}

	return out
}

// requireEqualMatrices asserts structural equality with a readable diff on
// failure (both canonical entry lists).
func requireEqualMatrices(t *testing.T, want, got *matrix.Matrix) {
	t.Helper()
	require.True(t, want.Equal(got),
		"matrices differ:\n want %v %v\n  got %v %v",
		want, collect(want), got, collect(got))
}

// ---------- Deterministic random fixtures ----------

// genSparse builds a pseudo-random rows×cols matrix holding at most nnz
// non-zero entries (coordinate collisions overwrite). Values fall in
// [-9, 9] without 0. Benchmarks share this helper, so it panics instead
// of taking *testing.T.
func genSparse(rng *rand.Rand, rows, cols, nnz int) *matrix.Matrix {
	m, err := matrix.New(rows, cols)
	if err != nil {
		panic(err)
	}
	var v int64
	for i := 0; i < nnz; i++ {
		v = 1 + rng.Int63n(9)
		if rng.Intn(2) == 0 {
			v = -v
		}
		if err = m.Set(rng.Intn(rows), rng.Intn(cols), v); err != nil {
			panic(err)
		}
	}

	return m
}

// randSparse is genSparse with a fresh fixed-seed generator, for tests
// that want reproducibility without sharing a generator.
func randSparse(seed int64, rows, cols, nnz int) *matrix.Matrix {
	return genSparse(rand.New(rand.NewSource(seed)), rows, cols, nnz)
}
