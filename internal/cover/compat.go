// Package cover implements the compatibility table (C2), the cover
// accumulator (C3), and the cancellation/deadline gate (C7) that the
// search driver and explorer consult. Grounded on
// original_source/exact-cover/ec.py's _compat_matrix/_coverages fields,
// restructured into separate single-purpose types per spec §4.2-§4.3.
package cover

// Table is the n x n pairwise-compatibility matrix B. Only entries with
// j<i are ever written; entries with j>=i remain false. B[j][i]=true means
// rows j and i are pairwise disjoint AND their union does not yet cover
// the universe, i.e. the pair is worth extending (spec §3).
//
// Mutation discipline: single-writer (the search driver), populated one
// outer-loop iteration i at a time; readers only look at columns below
// the current recursion depth, per spec §4.2.
type Table struct {
	n int
	b [][]bool
}

// NewTable allocates a zeroed n x n compatibility table.
func NewTable(n int) *Table {
	b := make([][]bool, n)
	for i := range b {
		b[i] = make([]bool, n)
	}
	return &Table{n: n, b: b}
}

// Get returns B[j][i].
func (t *Table) Get(j, i int) bool { return t.b[j][i] }

// Set writes B[j][i] = v.
func (t *Table) Set(j, i int, v bool) { t.b[j][i] = v }

// Candidates returns the elementwise AND of column i and column j over
// rows [0, upTo): B[0:upTo, i] AND B[0:upTo, j]. This is the `inter`
// vector of spec §4.4/§4.5. The index k of each entry in the returned
// slice is the same k used to index into the table and the input matrix;
// callers MUST NOT compact out zero entries (spec §4.5 invariant 1).
func (t *Table) Candidates(upTo, i, j int) []bool {
	out := make([]bool, upTo)
	for k := 0; k < upTo; k++ {
		out[k] = t.b[k][i] && t.b[k][j]
	}
	return out
}

// RestrictCandidates returns the elementwise AND of a previous candidate
// vector (truncated to length upTo) with column k of the table:
// inter[0:upTo] AND B[0:upTo, k]. This is `inter'` in spec §4.5, sliced to
// length k (not k+1): children only extend with rows strictly below k.
func (t *Table) RestrictCandidates(inter []bool, upTo, k int) []bool {
	out := make([]bool, upTo)
	for idx := 0; idx < upTo; idx++ {
		out[idx] = inter[idx] && t.b[idx][k]
	}
	return out
}

// AnySet reports whether any entry of v is true.
func AnySet(v []bool) bool {
	for _, b := range v {
		if b {
			return true
		}
	}
	return false
}
