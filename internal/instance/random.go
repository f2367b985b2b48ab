// Package instance generates random exact-cover instances, grounded on
// original_source/exact-cover/gen.py's random_inst.
package instance

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Random is a generated random instance plus its provenance, round-tripped
// through the instance file header per spec SPEC_FULL.md §3, §4.11.
type Random struct {
	Matrix       [][]bool
	GeneratedAt  time.Time
	Prob         float64
	GuaranteeSol bool
	FixedZeroCol bool
}

// GenerateRandom builds an n x m random instance, grounded on gen.py's
// random_inst: rows are drawn Bernoulli(prob) bit by bit and retried
// while empty or a duplicate of an earlier row; if guarantee is set and
// m <= n, the first m rows are seeded with the identity matrix so that
// those rows alone already form a cover; any resulting all-zero column is
// repaired by flipping one random row's bit there.
func GenerateRandom(rng *rand.Rand, n, m int, prob float64, guarantee bool) (*Random, error) {
	if m <= 0 || n <= 0 {
		return nil, errors.Errorf("instance: n and m must be positive, got n=%d m=%d", n, m)
	}
	if m <= 63 {
		if uint64(n) >= uint64(1)<<uint(m) {
			return nil, errors.Errorf("instance: n (%d) must be less than 2^m (2^%d)", n, m)
		}
	}

	matrix := make([][]bool, n)
	start := 0
	if guarantee && m <= n {
		start = m
		for i := 0; i < m; i++ {
			row := make([]bool, m)
			row[i] = true
			matrix[i] = row
		}
	}

	for i := start; i < n; i++ {
		var row []bool
		for {
			row = randomRow(rng, m, prob)
			if !anyTrue(row) {
				continue
			}
			if !duplicateOfEarlier(matrix, i, row) {
				break
			}
		}
		matrix[i] = row
	}

	fixedZeroCol := repairEmptyColumns(rng, matrix, m)

	return &Random{
		Matrix:       matrix,
		GeneratedAt:  time.Now(),
		Prob:         prob,
		GuaranteeSol: guarantee,
		FixedZeroCol: fixedZeroCol,
	}, nil
}

func randomRow(rng *rand.Rand, m int, prob float64) []bool {
	row := make([]bool, m)
	for i := range row {
		row[i] = rng.Float64() < prob
	}
	return row
}

func anyTrue(row []bool) bool {
	for _, v := range row {
		if v {
			return true
		}
	}
	return false
}

func duplicateOfEarlier(matrix [][]bool, upTo int, row []bool) bool {
	for i := 0; i < upTo; i++ {
		if rowsEqual(matrix[i], row) {
			return true
		}
	}
	return false
}

func rowsEqual(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// repairEmptyColumns scans for all-zero columns (which would make the
// instance unsolvable, spec §7 "degenerate instance") and, for each,
// flips a random row's bit at that column to 1, per gen.py.
func repairEmptyColumns(rng *rand.Rand, matrix [][]bool, m int) bool {
	fixed := false
	for col := 0; col < m; col++ {
		empty := true
		for _, row := range matrix {
			if row[col] {
				empty = false
				break
			}
		}
		if empty {
			fixed = true
			matrix[rng.Intn(len(matrix))][col] = true
		}
	}
	return fixed
}
