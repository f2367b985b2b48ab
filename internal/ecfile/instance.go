// Package ecfile round-trips exact-cover instances and results to the
// line-oriented text format of spec §6, grounded on
// original_source/exact-cover/ec.py's write_output/read_result and
// gen.py's write_random_inst/write_sudoku_inst. Scanning style follows
// github.com/grailbio/bio/encoding/fasta's bufio.Scanner + pkg/errors
// convention.
package ecfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// InstanceMeta is the provenance metadata round-tripped through an
// instance file's `;;; key: value` header lines.
type InstanceMeta struct {
	GeneratedAt time.Time
	IsSudoku    bool
	Dim         int // sudoku side length, from "Dimension: <k>"

	// Random-instance provenance (gen.py's RandomInstance).
	Prob         float64
	GuaranteeSol bool
	FixedZeroCol bool

	// Sudoku-instance provenance (gen.py's SudokuInstance).
	Difficulty float64
	BoardText  string
}

// WriteInstance writes matrix and meta in the format spec §6 describes:
// `;;;`-prefixed header/comment lines, then one data line per row
// (whitespace-separated 0/1 fields, trailing `-` sentinel).
func WriteInstance(w io.Writer, matrix [][]bool, meta InstanceMeta) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, ";;; Generated at: %s\n", meta.GeneratedAt.Format(time.RFC3339))
	if meta.IsSudoku {
		fmt.Fprintf(bw, ";;; Sudoku: yes\n")
		fmt.Fprintf(bw, ";;; Dimension: %d\n", meta.Dim)
		fmt.Fprintf(bw, ";;; Difficulty: %s\n", strconv.FormatFloat(meta.Difficulty, 'g', -1, 64))
		if meta.BoardText != "" {
			fmt.Fprintf(bw, ";;; Board:\n")
			for _, line := range strings.Split(strings.TrimRight(meta.BoardText, "\n"), "\n") {
				fmt.Fprintf(bw, ";;; %s\n", line)
			}
		}
	} else {
		if len(matrix) > 0 {
			fmt.Fprintf(bw, ";;; Cardinality of M: %d\n", len(matrix[0]))
		}
		fmt.Fprintf(bw, ";;; Cardinality of N: %d\n", len(matrix))
		fmt.Fprintf(bw, ";;; Probability: %s\n", strconv.FormatFloat(meta.Prob, 'g', -1, 64))
		fmt.Fprintf(bw, ";;; Guarantee solution: %t\n", meta.GuaranteeSol)
		fmt.Fprintf(bw, ";;; Fixed zero col: %t\n", meta.FixedZeroCol)
	}
	fmt.Fprintf(bw, ";;;\n")

	for _, row := range matrix {
		writeBitRow(bw, row)
		fmt.Fprintf(bw, " -\n")
	}

	return bw.Flush()
}

func writeBitRow(w io.Writer, row []bool) {
	fields := make([]string, len(row))
	for i, v := range row {
		if v {
			fields[i] = "1"
		} else {
			fields[i] = "0"
		}
	}
	io.WriteString(w, strings.Join(fields, " "))
}

// ReadInstance parses the instance file format of spec §6: header lines
// beginning with `;;;` (a line containing the token "Sudoku" marks the
// instance as a sudoku encoding; `;;; Dimension: <k>` gives the puzzle
// side), and data lines with a trailing `-` sentinel holding
// whitespace-separated 0/1 fields. All other lines are ignored.
func ReadInstance(r io.Reader) (matrix [][]bool, meta InstanceMeta, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, ";;;") {
			if strings.Contains(trimmed, "Sudoku") {
				meta.IsSudoku = true
			}
			if idx := strings.Index(trimmed, "Dimension:"); idx >= 0 {
				val := strings.TrimSpace(trimmed[idx+len("Dimension:"):])
				if d, perr := strconv.Atoi(val); perr == nil {
					meta.Dim = d
				}
			}
			continue
		}

		if !strings.HasSuffix(trimmed, "-") {
			continue
		}
		fieldsPart := strings.TrimSpace(strings.TrimSuffix(trimmed, "-"))
		if fieldsPart == "" {
			continue
		}
		fields := strings.Fields(fieldsPart)
		row := make([]bool, len(fields))
		for i, f := range fields {
			v, perr := strconv.Atoi(f)
			if perr != nil || (v != 0 && v != 1) {
				return nil, meta, errors.Errorf("ecfile: malformed instance cell %q", f)
			}
			row[i] = v == 1
		}
		matrix = append(matrix, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, meta, errors.Wrap(err, "ecfile: couldn't read instance data")
	}
	if len(matrix) == 0 {
		return nil, meta, errors.New("ecfile: no matrix rows found")
	}

	width := len(matrix[0])
	for i, row := range matrix {
		if len(row) != width {
			return nil, meta, errors.Errorf("ecfile: row %d has width %d, want %d", i, len(row), width)
		}
	}

	return matrix, meta, nil
}
