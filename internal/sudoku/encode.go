package sudoku

// Encode maps a Sudoku board to its exact-cover constraint matrix: n =
// dim^3 candidate rows (one per possible (row, col, entry) placement), m
// = 4*dim^2 constraint columns (cell, row, column, and box constraints
// in that order), per spec SPEC_FULL.md §4.9 and gen.py's sudoku_inst /
// __set_constraint_row.
func Encode(b *Board) (matrix [][]bool, m int) {
	dim := b.Dim
	n := dim * dim * dim
	m = 4 * dim * dim

	matrix = make([][]bool, n)
	for i := range matrix {
		matrix[i] = make([]bool, m)
	}

	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			entry := b.Grid[row][col]
			lo, hi := 1, dim
			if entry != 0 {
				lo, hi = entry, entry
			}
			for e := lo; e <= hi; e++ {
				setConstraintRow(b, matrix, row, col, e)
			}
		}
	}
	return matrix, m
}

// setConstraintRow mirrors gen.py's __set_constraint_row exactly,
// including its column layout and 1-based entry arithmetic.
func setConstraintRow(b *Board, matrix [][]bool, row, col, entry int) {
	dim := b.Dim
	candidateRow := row*dim*dim + col*dim + entry - 1
	cellCol := row*dim + col
	rowCol := dim*dim + row*dim + entry - 1
	colCol := 2*dim*dim + col*dim + entry - 1
	boxCol := 3*dim*dim + dim*(b.Base*(row/b.Base)+col/b.Base) + entry - 1

	matrix[candidateRow][cellCol] = true
	matrix[candidateRow][rowCol] = true
	matrix[candidateRow][colCol] = true
	matrix[candidateRow][boxCol] = true
}

// Decode recovers a solved board from a discovered cover: each index in
// cover is a candidate row of Encode's matrix, which determines exactly
// one (row, col, entry) placement.
func Decode(cover []int, dim int) (*Board, error) {
	b, err := NewBoard(dim)
	if err != nil {
		return nil, err
	}
	for _, idx := range cover {
		entry := idx%dim + 1
		rem := idx / dim
		col := rem % dim
		row := rem / dim
		b.Grid[row][col] = entry
	}
	return b, nil
}
