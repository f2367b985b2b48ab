// Package search implements the recursive exact-cover enumeration: the
// two-level outer loop that populates the compatibility table and seeds
// recursion (C4), and the depth-first explorer that extends partial
// covers (C5). Grounded on
// original_source/exact-cover/ec.py's EC.start/EC.__esplora, restructured
// per spec §4.4-§4.6 and DESIGN NOTES §9 (explicit push/pop cover buffer,
// UnionPolicy interface instead of subclass override).
package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/bitrow"
	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/cover"
)

// Options configures a single search run.
type Options struct {
	// Plus selects the EC-Plus cardinality optimisation (C6) in place of
	// the baseline bitwise-union algorithm.
	Plus bool
	// TimeLimit is a soft CPU-time deadline; zero means no limit.
	TimeLimit time.Duration
	// StopFlag, if non-nil, is an externally-owned cooperative stop flag
	// (spec §5: exactly one concurrent producer may set it true).
	StopFlag *atomic.Bool
}

// Run executes the exact-cover search over rows and returns the
// completed Result exactly once (C8). ctx cancellation is treated as an
// additional stop signal alongside opts.StopFlag and the CPU time limit.
func Run(ctx context.Context, rows *bitrow.Store, opts Options) Result {
	gate := cover.NewGate(opts.StopFlag, opts.TimeLimit)
	started := time.Now()

	fired := func() bool {
		if gate.Fired() {
			return true
		}
		select {
		case <-ctx.Done():
			gate.Stop()
			return true
		default:
			return false
		}
	}

	n := rows.N()
	table := cover.NewTable(n)
	acc := cover.NewAccumulator()

	var policy bitrow.UnionPolicy
	if opts.Plus {
		policy = bitrow.NewPlusPolicy(rows)
	} else {
		policy = bitrow.NewBasePolicy(rows)
	}

	e := &engine{
		rows:   rows,
		table:  table,
		acc:    acc,
		policy: policy,
		fired:  fired,
		buf:    make([]int, 0, n),
	}
	e.driveOuterLoop()

	res := Result{
		Covers:           acc.Covers(),
		VisitedNodes:     e.visited,
		TotalNodes:       totalNodes(n),
		ExecutionTime:    time.Since(started),
		Stopped:          gate.Stopped(),
		TimeLimitReached: gate.TimeLimitReached(),
		Plus:             opts.Plus,
		Diagnostics:      Diagnostics{EmptyColumns: rows.EmptyColumns()},
	}
	return res
}

// engine carries the mutable search state threaded through the outer
// loop (C4) and the recursive explorer (C5).
type engine struct {
	rows    *bitrow.Store
	table   *cover.Table
	acc     *cover.Accumulator
	policy  bitrow.UnionPolicy
	fired   func() bool
	visited uint64
	buf     []int // push on descent, pop on return (DESIGN NOTES §9)
}

// driveOuterLoop implements C4's state machine: for each i, ENTER ->
// (SKIP_EMPTY | EMIT_FULL | SCAN_INNER) -> EXIT.
func (e *engine) driveOuterLoop() {
	n := e.rows.N()
	for i := 0; i < n; i++ {
		if e.fired() {
			return
		}
		e.visited++

		if e.rows.RowEmpty(i) {
			continue
		}
		if e.rows.RowFull(i) {
			e.acc.Emit([]int{i})
			continue
		}

		for j := 0; j < i; j++ {
			if e.fired() {
				break
			}
			e.visited++

			if !e.rows.RowsDisjoint(i, j) {
				e.table.Set(j, i, false)
				continue
			}

			desc, full := e.policy.PairUnion(i, j)
			if full {
				e.acc.Emit([]int{i, j})
				e.table.Set(j, i, false)
				continue
			}

			e.table.Set(j, i, true)
			inter := e.table.Candidates(j, i, j)
			if cover.AnySet(inter) {
				e.buf = append(e.buf[:0], i, j)
				e.explore(desc, inter)
			}
		}
	}
}

// explore implements C5: depth-first extension of the partial cover in
// e.buf using the pruned candidate vector inter. inter[k] may only be 1
// for k strictly below every index currently in e.buf (spec §3 invariant
// iii); the positional index k into inter is also the row index and the
// column index into the compatibility table, so inter must never be
// compacted (spec §4.5 invariant 1).
func (e *engine) explore(desc bitrow.Descriptor, inter []bool) {
	for k := 0; k < len(inter); k++ {
		if e.fired() {
			return
		}
		if !inter[k] {
			continue
		}
		e.visited++

		nextDesc, full := e.policy.Extend(desc, k)

		e.buf = append(e.buf, k)
		if full {
			e.acc.Emit(e.buf)
		} else {
			// inter' is sliced to length k, not k+1: children only
			// extend with rows strictly below k (spec §4.5 invariant 2).
			restricted := e.table.RestrictCandidates(inter, k, k)
			if cover.AnySet(restricted) {
				e.explore(nextDesc, restricted)
			}
		}
		e.buf = e.buf[:len(e.buf)-1]
	}
}
