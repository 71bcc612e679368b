// store.go implements the dictionary-of-keys entry store: the sparse
// container every other component sits on. It maps (row, col) coordinates
// to non-zero int64 values and upholds one invariant at all times:
// no entry is ever kept with value zero.
//
// The store is deliberately total: it accepts any int coordinates,
// including negatives. Range policing against declared dimensions is the
// Matrix wrapper's contract, not the store's.

package matrix

import (
	"iter"
	"sort"
)

// Store is a sparse coordinate→value container (dictionary of keys).
//
// Construct with NewStore; the zero value is not usable. A Store carries
// no locking: concurrent readers are safe, mutation requires exclusive
// access.
type Store struct {
	data map[coord]int64
}

// NewStore returns an empty store.
// Complexity: O(1)
func NewStore() *Store {
	return &Store{data: make(map[coord]int64)}
}

// Get returns the value at (row, col), or 0 when no entry is stored there.
// Absence is the implicit zero — never an error.
// Complexity: O(1) expected
func (s *Store) Get(row, col int) int64 {
	return s.data[coord{row, col}]
}

// Set stores v at (row, col). Setting zero removes any existing entry for
// the coordinate (no-op when absent), preserving the non-zero invariant;
// any other value inserts or overwrites.
// Complexity: O(1) expected
func (s *Store) Set(row, col int, v int64) {
	k := coord{row, col}
	if v == 0 {
		delete(s.data, k)
		return
	}
	s.data[k] = v
}

// Add accumulates delta into the value at (row, col), removing the entry
// when the running sum reaches exactly zero. This is the cancellation
// primitive the arithmetic kernels rely on.
// Complexity: O(1) expected
func (s *Store) Add(row, col int, delta int64) {
	k := coord{row, col}
	sum := s.data[k] + delta
	if sum == 0 {
		delete(s.data, k)
		return
	}
	s.data[k] = sum
}

// Len returns the number of stored (non-zero) entries.
// Complexity: O(1)
func (s *Store) Len() int {
	return len(s.data)
}

// Entries returns a lazy, finite, restartable sequence of the stored
// entries in canonical row-major order (ascending row, then ascending
// column). Each ranging snapshots the store first, so an in-flight
// sequence stays stable even if the store is mutated; restarting the
// range observes the store's current state.
// Complexity: O(n log n) per ranging, Space O(n), n = Len()
func (s *Store) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		snap := make([]Entry, 0, len(s.data))
		for k, v := range s.data {
			snap = append(snap, Entry{Row: k.row, Col: k.col, Val: v})
		}
		sort.Slice(snap, func(i, j int) bool { return posLess(snap[i], snap[j]) })

		var e Entry
		for _, e = range snap {
			if !yield(e) {
				return
			}
		}
	}
}

// Clone returns an independent deep copy of the store.
// Complexity: O(n)
func (s *Store) Clone() *Store {
	out := &Store{data: make(map[coord]int64, len(s.data))}
	var k coord
	var v int64
	for k, v = range s.data {
		out.data[k] = v
	}

	return out
}
