package search

import (
	"math"
	"math/big"
	"time"
)

// Diagnostics surfaces non-fatal observations made about the instance
// during search setup, without affecting control flow (spec §4.1, §7).
type Diagnostics struct {
	// EmptyColumns lists columns with no 1-bit in any row: such an
	// instance can never reach a cover, but the search still runs.
	EmptyColumns []int
}

// Result bundles the covers found, the search counters, and the
// termination cause (C8). TotalNodes is 2^n-1, an arbitrary-precision
// reporting artefact (spec §4.8, §9) that never influences control flow.
type Result struct {
	Covers           [][]int
	VisitedNodes     uint64
	TotalNodes       *big.Int
	ExecutionTime    time.Duration
	Stopped          bool
	TimeLimitReached bool
	Plus             bool
	Diagnostics      Diagnostics
}

// VisitedPercentage returns round(VisitedNodes/TotalNodes*100, 4), a
// derived read-only view (spec §4.8).
func (r Result) VisitedPercentage() float64 {
	if r.TotalNodes == nil || r.TotalNodes.Sign() == 0 {
		return 0
	}
	total := new(big.Float).SetInt(r.TotalNodes)
	visited := new(big.Float).SetUint64(r.VisitedNodes)
	pct := new(big.Float).Quo(visited, total)
	pct.Mul(pct, big.NewFloat(100))
	f, _ := pct.Float64()
	return math.Round(f*10000) / 10000
}

// Equal compares two results over (Covers, VisitedNodes, TotalNodes)
// only, per spec §9: "Result equality in the source ignores the plus
// flag and execution time; this specification preserves that choice."
// Covers are compared as ordered sequences (spec §3: "No canonicalisation
// is performed"), mirroring the Python original's np.array_equal check.
func (r Result) Equal(o Result) bool {
	if r.VisitedNodes != o.VisitedNodes {
		return false
	}
	if (r.TotalNodes == nil) != (o.TotalNodes == nil) {
		return false
	}
	if r.TotalNodes != nil && r.TotalNodes.Cmp(o.TotalNodes) != 0 {
		return false
	}
	if len(r.Covers) != len(o.Covers) {
		return false
	}
	for i := range r.Covers {
		if len(r.Covers[i]) != len(o.Covers[i]) {
			return false
		}
		for j := range r.Covers[i] {
			if r.Covers[i][j] != o.Covers[i][j] {
				return false
			}
		}
	}
	return true
}

// totalNodes returns 2^n - 1 as an arbitrary-precision integer, so it
// never overflows for n >= 64 (spec §9 "Ambiguities observed in the
// source").
func totalNodes(n int) *big.Int {
	total := new(big.Int).Lsh(big.NewInt(1), uint(n))
	return total.Sub(total, big.NewInt(1))
}
