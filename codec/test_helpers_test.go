// SPDX-License-Identifier: MIT
// Shared helpers for codec tests: matrix builders and reproducible random
// inputs. Kept separate so the scenario files stay focused on behavior.

package codec_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsix/matrix"
)

// mustFromEntries builds a matrix from entries or fails the test.
func mustFromEntries(t *testing.T, rows, cols int, entries []matrix.Entry) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewFromEntries(rows, cols, entries)
	require.NoError(t, err, "NewFromEntries(%d, %d)", rows, cols)

	return m
}

// genSparse fills a rows×cols matrix with exactly nnz random non-zero
// values in [-9, 9]. Panics on construction failure so benchmarks can
// share it.
func genSparse(rng *rand.Rand, rows, cols, nnz int) *matrix.Matrix {
	if nnz > rows*cols {
		panic(fmt.Sprintf("genSparse: nnz %d exceeds capacity %d", nnz, rows*cols))
	}
	m, err := matrix.New(rows, cols)
	if err != nil {
		panic(err)
	}
	for m.NonZeroCount() < nnz {
		v := int64(rng.Intn(19) - 9) // [-9, 9]
		if v == 0 {
			continue
		}
		if err = m.Set(rng.Intn(rows), rng.Intn(cols), v); err != nil {
			panic(err)
		}
	}

	return m
}

// randSparse is genSparse with a self-contained seeded source.
func randSparse(seed int64, rows, cols, nnz int) *matrix.Matrix {
	return genSparse(rand.New(rand.NewSource(seed)), rows, cols, nnz)
}
