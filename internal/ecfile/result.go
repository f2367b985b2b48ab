package ecfile

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/search"
	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/sudoku"
)

// WriteResult writes res in the header-block-then-coverages format of
// spec §6, grounded on ec.py's write_output. When sudokuDim > 0, each
// cover is additionally rendered as a solved board via sudoku.Decode.
func WriteResult(w io.Writer, matrix [][]bool, res search.Result, sudokuDim int) error {
	bw := bufio.NewWriter(w)

	version := "Base version"
	if res.Plus {
		version = "Plus version"
	}
	fmt.Fprintf(bw, ";;; EC Algorithm (%s)\n", version)
	fmt.Fprintf(bw, ";;; Executed at: %s\n", time.Now().Format(time.RFC3339))
	execSeconds := res.ExecutionTime.Seconds()
	fmt.Fprintf(bw, ";;; Execution time: %ss (%s minutes)\n",
		strconv.FormatFloat(execSeconds, 'f', -1, 64),
		strconv.FormatFloat(execSeconds/60, 'f', 3, 64))
	fmt.Fprintf(bw, ";;; Stopped: %t\n", res.Stopped)
	fmt.Fprintf(bw, ";;; Time limit reached: %t\n", res.TimeLimitReached)
	fmt.Fprintf(bw, ";;; Nodes visited: %d\n", res.VisitedNodes)
	fmt.Fprintf(bw, ";;; Total nodes: %s\n", res.TotalNodes.String())
	fmt.Fprintf(bw, ";;; Percentage of nodes visited: %s%%\n",
		strconv.FormatFloat(res.VisitedPercentage(), 'f', -1, 64))
	fmt.Fprintf(bw, ";;;\n")

	if sudokuDim > 0 {
		fmt.Fprintf(bw, ";;; Sudoku solutions:\n")
		for _, c := range res.Covers {
			board, err := sudoku.Decode(c, sudokuDim)
			if err != nil {
				return errors.Wrap(err, "ecfile: decoding sudoku cover")
			}
			for _, line := range strings.Split(strings.TrimRight(board.String(), "\n"), "\n") {
				fmt.Fprintf(bw, ";;; %s\n", line)
			}
			fmt.Fprintf(bw, ";;;\n")
		}
	}

	for i, row := range matrix {
		fmt.Fprintf(bw, ";;; Set %3d: [", i+1)
		writeBitRow(bw, row)
		fmt.Fprintf(bw, "]\n")
	}
	fmt.Fprintf(bw, ";;;\n")

	fmt.Fprintf(bw, ";;; Exact Coverages:\n")
	if len(res.Covers) == 0 {
		fmt.Fprintf(bw, ";;; No coverage found.\n")
	} else {
		for _, cover := range res.Covers {
			fields := make([]string, len(cover))
			for i, idx := range cover {
				fields[i] = strconv.Itoa(idx + 1)
			}
			fmt.Fprintf(bw, "[%s]\n", strings.Join(fields, " "))
		}
	}

	return bw.Flush()
}

// ReadResult parses a result file back into a search.Result, for the
// compare sub-command (spec §6 "A compare utility parses back exactly
// these fields for cross-implementation equality checks").
func ReadResult(r io.Reader) (search.Result, error) {
	var res search.Result
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	inCoverages := false
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case inCoverages:
			if trimmed == ";;; No coverage found." || trimmed == "" {
				continue
			}
			if !strings.HasPrefix(trimmed, "[") {
				continue
			}
			cover, err := parseCoverLine(trimmed)
			if err != nil {
				return search.Result{}, err
			}
			res.Covers = append(res.Covers, cover)

		case strings.Contains(trimmed, "Exact Coverages"):
			inCoverages = true

		case strings.Contains(trimmed, "EC Algorithm"):
			res.Plus = strings.Contains(trimmed, "Plus version")

		case strings.Contains(trimmed, "Stopped:"):
			res.Stopped = strings.Contains(strings.ToLower(trimmed), "true")

		case strings.Contains(trimmed, "Time limit reached:"):
			res.TimeLimitReached = strings.Contains(strings.ToLower(trimmed), "true")

		case strings.Contains(trimmed, "Nodes visited:"):
			val := afterLastColon(trimmed)
			n, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				return search.Result{}, errors.Wrapf(err, "ecfile: parsing nodes visited %q", val)
			}
			res.VisitedNodes = n

		case strings.Contains(trimmed, "Total nodes:"):
			val := afterLastColon(trimmed)
			total, ok := new(big.Int).SetString(val, 10)
			if !ok {
				return search.Result{}, errors.Errorf("ecfile: parsing total nodes %q", val)
			}
			res.TotalNodes = total

		case strings.Contains(trimmed, "Execution time:"):
			val := afterLastColon(trimmed)
			val = strings.TrimSpace(val)
			secStr := strings.SplitN(val, "s", 2)[0]
			secs, err := strconv.ParseFloat(strings.TrimSpace(secStr), 64)
			if err != nil {
				return search.Result{}, errors.Wrapf(err, "ecfile: parsing execution time %q", val)
			}
			res.ExecutionTime = time.Duration(secs * float64(time.Second))
		}
	}
	if err := scanner.Err(); err != nil {
		return search.Result{}, errors.Wrap(err, "ecfile: couldn't read result data")
	}
	return res, nil
}

func afterLastColon(s string) string {
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(s[idx+1:])
}

func parseCoverLine(line string) ([]int, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
	fields := strings.Fields(inner)
	cover := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "ecfile: parsing cover index %q", f)
		}
		cover[i] = v - 1
	}
	return cover, nil
}
