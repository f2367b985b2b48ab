// Package sudoku encodes a Sudoku puzzle as an exact-cover constraint
// matrix and decodes a discovered cover back into a solved board.
// Grounded on original_source/exact-cover/sudoku.py (Sudoku.__create_board,
// gen_puzzle, __str__) and gen.py (sudoku_inst, __set_constraint_row).
package sudoku

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// Board is a dim x dim Sudoku grid; 0 marks an empty cell, values in
// [1, dim] otherwise.
type Board struct {
	Dim  int
	Base int
	Grid [][]int
}

// NewBoard allocates an empty dim x dim board. dim must be a positive
// perfect square (so that dim x dim boxes of size base x base tile the
// grid evenly); any other value is a malformed-input error, consistent
// with the construction-time validation discipline of spec §4.1.
func NewBoard(dim int) (*Board, error) {
	if dim <= 0 {
		return nil, errors.Errorf("sudoku: dimension must be positive, got %d", dim)
	}
	base := int(math.Sqrt(float64(dim)))
	if base*base != dim {
		return nil, errors.Errorf("sudoku: dimension %d is not a perfect square", dim)
	}
	grid := make([][]int, dim)
	for i := range grid {
		grid[i] = make([]int, dim)
	}
	return &Board{Dim: dim, Base: base, Grid: grid}, nil
}

func shuffled(rng *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	rng.Shuffle(n, func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// pattern implements sudoku.py's pattern(row, col): the base Latin-square
// layout before band/stack/digit shuffling is applied.
func pattern(base, dim, row, col int) int {
	return (base*(row%base) + row/base + col) % dim
}

// Generate fills the board with a complete, valid Sudoku solution using
// the shuffled-band construction of sudoku.py's __create_board (see
// https://stackoverflow.com/a/56581709, cited there).
func (b *Board) Generate(rng *rand.Rand) {
	baseRange := make([]int, b.Base)
	for i := range baseRange {
		baseRange[i] = i
	}

	rowBands := shuffled(rng, b.Base)
	colBands := shuffled(rng, b.Base)
	digits := shuffled(rng, b.Dim)

	rows := make([]int, 0, b.Dim)
	for _, group := range rowBands {
		for _, r := range shuffled(rng, b.Base) {
			rows = append(rows, group*b.Base+r)
		}
	}
	cols := make([]int, 0, b.Dim)
	for _, group := range colBands {
		for _, c := range shuffled(rng, b.Base) {
			cols = append(cols, group*b.Base+c)
		}
	}

	for ri, row := range rows {
		for ci, col := range cols {
			b.Grid[ri][ci] = digits[pattern(b.Base, b.Dim, row, col)] + 1
		}
	}
}

// Puzzle returns a copy of b with floor(dim^2 * difficulty) cells blanked
// out uniformly at random without replacement, mirroring sudoku.py's
// gen_puzzle. difficulty is in [0, 1].
func (b *Board) Puzzle(rng *rand.Rand, difficulty float64) *Board {
	clone := &Board{Dim: b.Dim, Base: b.Base, Grid: make([][]int, b.Dim)}
	for i, row := range b.Grid {
		clone.Grid[i] = append([]int(nil), row...)
	}

	squares := b.Dim * b.Dim
	numEmpty := int(math.Floor(float64(squares) * difficulty))
	for _, cell := range rng.Perm(squares)[:numEmpty] {
		clone.Grid[cell/b.Dim][cell%b.Dim] = 0
	}
	return clone
}

// String renders the board as a box-drawn grid, grounded on sudoku.py's
// Sudoku.__str__.
func (b *Board) String() string {
	cellLen := len(fmt.Sprint(b.Dim))

	var sb strings.Builder
	sep := strings.Repeat(strings.Repeat("-", cellLen+1)+"+", b.Base)
	sep = "+" + sep
	for i, row := range b.Grid {
		if i == 0 {
			sb.WriteString(sep)
			sb.WriteByte('\n')
		}
		sb.WriteByte('|')
		for j, v := range row {
			if v == 0 {
				sb.WriteString(" " + strings.Repeat(" ", cellLen))
			} else {
				sb.WriteString(fmt.Sprintf(" %0*d", cellLen, v))
			}
			if (j+1)%b.Base == 0 {
				sb.WriteString(" |")
			}
		}
		sb.WriteByte('\n')
		if i == b.Dim-1 || (i+1)%b.Base == 0 {
			sb.WriteString(sep)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
