package sudoku

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardRejectsNonSquareDim(t *testing.T) {
	_, err := NewBoard(10)
	require.Error(t, err)
}

func TestGenerateProducesValidBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b, err := NewBoard(9)
	require.NoError(t, err)
	b.Generate(rng)

	assertValidSolution(t, b)
}

func assertValidSolution(t *testing.T, b *Board) {
	t.Helper()
	for i := 0; i < b.Dim; i++ {
		rowSeen := map[int]bool{}
		colSeen := map[int]bool{}
		for j := 0; j < b.Dim; j++ {
			assert.False(t, rowSeen[b.Grid[i][j]], "duplicate in row %d", i)
			rowSeen[b.Grid[i][j]] = true
			assert.False(t, colSeen[b.Grid[j][i]], "duplicate in column %d", i)
			colSeen[b.Grid[j][i]] = true
			assert.NotZero(t, b.Grid[i][j])
		}
	}
	for br := 0; br < b.Base; br++ {
		for bc := 0; bc < b.Base; bc++ {
			seen := map[int]bool{}
			for i := 0; i < b.Base; i++ {
				for j := 0; j < b.Base; j++ {
					v := b.Grid[br*b.Base+i][bc*b.Base+j]
					assert.False(t, seen[v], "duplicate in box (%d,%d)", br, bc)
					seen[v] = true
				}
			}
		}
	}
}

func TestPuzzleBlanksExpectedCellCount(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	b, err := NewBoard(9)
	require.NoError(t, err)
	b.Generate(rng)

	puzzle := b.Puzzle(rng, 0.5)
	empty := 0
	for _, row := range puzzle.Grid {
		for _, v := range row {
			if v == 0 {
				empty++
			}
		}
	}
	assert.Equal(t, 40, empty) // floor(81*0.5)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b, err := NewBoard(4)
	require.NoError(t, err)
	b.Generate(rng)

	matrix, m := Encode(b)
	assert.Equal(t, 4*4*4, len(matrix))
	assert.Equal(t, 4*4*4, m)

	// The cover consisting of exactly the rows matching b's own
	// placements must round-trip to the same board.
	var cover []int
	for row := 0; row < b.Dim; row++ {
		for col := 0; col < b.Dim; col++ {
			entry := b.Grid[row][col]
			idx := row*b.Dim*b.Dim + col*b.Dim + entry - 1
			cover = append(cover, idx)
		}
	}
	decoded, err := Decode(cover, b.Dim)
	require.NoError(t, err)
	assert.Equal(t, b.Grid, decoded.Grid)
}

func TestEncodeGivenCellsRestrictCandidates(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	full, err := NewBoard(9)
	require.NoError(t, err)
	full.Generate(rng)

	puzzle := full.Puzzle(rng, 0.3)
	matrix, _ := Encode(puzzle)

	// A filled cell contributes exactly one candidate row; an empty cell
	// contributes dim candidate rows.
	counts := map[[2]int]int{}
	dim := puzzle.Dim
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			for entry := 1; entry <= dim; entry++ {
				idx := row*dim*dim + col*dim + entry - 1
				if matrix[idx][row*dim+col] {
					counts[[2]int{row, col}]++
				}
			}
		}
	}
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			if puzzle.Grid[row][col] != 0 {
				assert.Equal(t, 1, counts[[2]int{row, col}])
			} else {
				assert.Equal(t, dim, counts[[2]int{row, col}])
			}
		}
	}
}
