// Package bitrow stores the exact-cover input matrix A as packed bit rows
// and answers the pairwise predicates the search needs: emptiness,
// fullness, disjointness, and union cardinality. See
// github.com/grailbio/bio/encoding/fasta for the sealed-interface-plus-two-
// implementations shape this package generalizes (spec DESIGN NOTES §9).
package bitrow

import (
	"math/bits"

	"github.com/pkg/errors"
)

// wordBits is the width of the packed storage word. Mirrors the
// BytesPerWord-style constant used throughout biosimd, generalized here to
// a portable (non-SIMD) popcount word.
const wordBits = 64

// Row is an m-bit vector packed as 64-bit words, bit i living at
// word i/64, bit i%64.
type Row []uint64

func newRow(m int) Row {
	return make(Row, (m+wordBits-1)/wordBits)
}

func (r Row) set(col int) {
	r[col/wordBits] |= 1 << uint(col%wordBits)
}

func (r Row) get(col int) bool {
	return r[col/wordBits]&(1<<uint(col%wordBits)) != 0
}

func (r Row) clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

func (r Row) popcount() int {
	n := 0
	for _, w := range r {
		n += bits.OnesCount64(w)
	}
	return n
}

func (r Row) isZero() bool {
	for _, w := range r {
		if w != 0 {
			return false
		}
	}
	return true
}

func (r Row) and(other Row) Row {
	out := make(Row, len(r))
	for i := range r {
		out[i] = r[i] & other[i]
	}
	return out
}

func (r Row) or(other Row) Row {
	out := make(Row, len(r))
	for i := range r {
		out[i] = r[i] | other[i]
	}
	return out
}

// Store holds the immutable input matrix A: n rows of m packed bits each.
// It is the bit-row store specified as C1: construction-time validated,
// read-only thereafter, and consulted by the search driver and explorer
// purely for pairwise predicates.
type Store struct {
	rows []Row
	m    int
	n    int
	full Row  // all-ones row of width m, for fullness comparisons
	card []int // popcount(row_i), precomputed Θ(n·m/word) for EC Plus
}

// NewStore builds a Store from a dense 0/1 matrix. Every row must have
// exactly m columns; a mismatch is a malformed-input error, per spec §4.1.
func NewStore(matrix [][]bool) (*Store, error) {
	if len(matrix) == 0 {
		return nil, errors.New("bitrow: empty matrix")
	}
	m := len(matrix[0])
	if m == 0 {
		return nil, errors.New("bitrow: zero-width rows")
	}
	rows := make([]Row, len(matrix))
	card := make([]int, len(matrix))
	for i, bitsRow := range matrix {
		if len(bitsRow) != m {
			return nil, errors.Errorf("bitrow: row %d has width %d, want %d", i, len(bitsRow), m)
		}
		row := newRow(m)
		for col, v := range bitsRow {
			if v {
				row.set(col)
			}
		}
		rows[i] = row
		card[i] = row.popcount()
	}

	full := newRow(m)
	for col := 0; col < m; col++ {
		full.set(col)
	}

	return &Store{rows: rows, m: m, n: len(rows), full: full, card: card}, nil
}

// N returns the number of rows (|A|).
func (s *Store) N() int { return s.n }

// M returns the universe size.
func (s *Store) M() int { return s.m }

// RowEmpty reports whether row i has no set bits.
func (s *Store) RowEmpty(i int) bool { return s.rows[i].isZero() }

// RowFull reports whether row i has all m bits set.
func (s *Store) RowFull(i int) bool { return s.card[i] == s.m }

// RowsDisjoint reports whether rows i and j share no set bit.
func (s *Store) RowsDisjoint(i, j int) bool {
	return s.rows[i].and(s.rows[j]).isZero()
}

// Card returns popcount(row_i), precomputed at construction time.
func (s *Store) Card(i int) int { return s.card[i] }

// PopcountPerRow returns a copy of the precomputed per-row popcounts.
func (s *Store) PopcountPerRow() []int {
	out := make([]int, len(s.card))
	copy(out, s.card)
	return out
}

// EmptyColumns returns the indices of columns with no 1-bit in any row.
// Such an instance can never reach a cover; surfaced as a diagnostic by the
// search driver, per spec §4.1 and §7 ("degenerate instance").
func (s *Store) EmptyColumns() []int {
	var empty []int
	for col := 0; col < s.m; col++ {
		any := false
		for i := range s.rows {
			if s.rows[i].get(col) {
				any = true
				break
			}
		}
		if !any {
			empty = append(empty, col)
		}
	}
	return empty
}
