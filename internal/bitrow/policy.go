package bitrow

// Descriptor is the opaque union-of-partial-cover payload carried down the
// search recursion. For the base policy it is the bitwise union Row; for
// the Plus policy it is an int (the cumulative popcount). Callers never
// inspect a Descriptor directly, only pass it back through UnionPolicy.
type Descriptor interface{}

// UnionPolicy is the interface swapped in for the EC / EC-Plus variants
// (spec DESIGN NOTES §9: "re-architect as an interface ... with two
// concrete implementations selected at construction", replacing the
// Python original's subclass method overrides in ec.py's ECPlus).
type UnionPolicy interface {
	// PairUnion returns the union descriptor of rows i and j, and whether
	// that union already covers the whole universe.
	PairUnion(i, j int) (Descriptor, bool)
	// Extend returns the descriptor of d unioned with row k, and whether
	// the result covers the whole universe. Extend must be monotonic and
	// associative in the set-theoretic sense (spec §4.1).
	Extend(d Descriptor, k int) (Descriptor, bool)
}

// BasePolicy implements the baseline EC algorithm: descriptors are the
// literal bitwise union of the rows in the partial cover.
type BasePolicy struct{ Store *Store }

// NewBasePolicy returns the full-union-row UnionPolicy (EC).
func NewBasePolicy(s *Store) *BasePolicy { return &BasePolicy{Store: s} }

func (p *BasePolicy) PairUnion(i, j int) (Descriptor, bool) {
	u := p.Store.rows[i].or(p.Store.rows[j])
	return u, u.popcount() == p.Store.m
}

func (p *BasePolicy) Extend(d Descriptor, k int) (Descriptor, bool) {
	u := d.(Row).or(p.Store.rows[k])
	return u, u.popcount() == p.Store.m
}

// PlusPolicy implements EC Plus: descriptors are plain ints, the sum of
// per-row popcounts. This is correct because the recursion only ever
// extends a partial cover with rows already proven disjoint from every
// row currently in it (enforced by the compatibility table), so the union
// popcount equals the sum of the individual popcounts (spec §4.6).
type PlusPolicy struct{ Store *Store }

// NewPlusPolicy returns the cardinality-arithmetic UnionPolicy (EC Plus).
func NewPlusPolicy(s *Store) *PlusPolicy { return &PlusPolicy{Store: s} }

func (p *PlusPolicy) PairUnion(i, j int) (Descriptor, bool) {
	sum := p.Store.card[i] + p.Store.card[j]
	return sum, sum == p.Store.m
}

func (p *PlusPolicy) Extend(d Descriptor, k int) (Descriptor, bool) {
	sum := d.(int) + p.Store.card[k]
	return sum, sum == p.Store.m
}
