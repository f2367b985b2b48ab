package cover

// Accumulator is the append-only collection of covers (C3). Each emitted
// cover is an independently-owned copy of the recursion's working buffer
// at the moment of discovery; no deduplication is performed (spec §4.3,
// §9 "The recursion's working buffer is reused after return").
type Accumulator struct {
	covers [][]int
}

// NewAccumulator returns an empty cover accumulator.
func NewAccumulator() *Accumulator { return &Accumulator{} }

// Emit snapshots indices and appends the copy to the accumulator.
func (a *Accumulator) Emit(indices []int) {
	snap := make([]int, len(indices))
	copy(snap, indices)
	a.covers = append(a.covers, snap)
}

// Covers returns the accumulated covers in discovery order.
func (a *Accumulator) Covers() [][]int { return a.covers }

// Len returns the number of covers accumulated so far.
func (a *Accumulator) Len() int { return len(a.covers) }
