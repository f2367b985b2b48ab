package exec

import (
	"time"

	"github.com/biogo/store/llrb"

	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/search"
)

// timedResult keys a result by its execution time so the fastest of N
// compared results can be found in O(log N) per insertion, generalizing
// encoding/bampair/shard_info.go's llrb.Tree-as-ordered-index usage from
// genomic-coordinate keys to execution-time keys.
type timedResult struct {
	execTime time.Duration
	idx      int
}

// Compare orders timedResult entries by execution time, ties broken by
// original input order (so the first of equally-fast results wins, as
// compare.py's linear-scan `<` comparison does).
func (t timedResult) Compare(c llrb.Comparable) int {
	o := c.(timedResult)
	if diff := t.execTime - o.execTime; diff != 0 {
		if diff < 0 {
			return -1
		}
		return 1
	}
	return t.idx - o.idx
}

// CompareResults reports whether every result is equal (per
// search.Result.Equal, i.e. ignoring Plus and ExecutionTime) to the
// first, and identifies the fastest of the N results by execTimes.
// Grounded on compare.py's compare_results.
func CompareResults(results []search.Result, execTimes []time.Duration) (allEqual bool, fastestIdx int, fastestTime time.Duration) {
	if len(results) == 0 {
		return true, -1, 0
	}

	tree := &llrb.Tree{}
	for i, d := range execTimes {
		tree.Insert(timedResult{execTime: d, idx: i})
	}
	fastest := tree.Min().(timedResult)
	fastestIdx = fastest.idx
	fastestTime = fastest.execTime

	allEqual = true
	for _, res := range results[1:] {
		if !res.Equal(results[0]) {
			allEqual = false
			break
		}
	}
	return allEqual, fastestIdx, fastestTime
}
