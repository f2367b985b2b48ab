// Package exec implements the checksum and fastest-of-N comparison
// utilities behind the `compare` sub-command (C13), grounded on
// original_source/exact-cover/compare.py's compare_results and
// cmd/bio-pamtool/checksum.go's refChecksum accumulation pattern.
package exec

import (
	"fmt"
	"sort"
	"strings"

	farm "github.com/dgryski/go-farm"
	"github.com/minio/highwayhash"

	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/search"
)

// checksumKey is a fixed hash key, matching the teacher's convention in
// checksum.go of hashing records with a fixed, reproducible key rather
// than a random one (checksums must be stable across runs to be
// comparable at all).
var checksumKey = [32]byte{
	'e', 'x', 'a', 'c', 't', '-', 'c', 'o', 'v', 'e', 'r', '-', 'c', 'h', 'e', 'c',
	'k', 's', 'u', 'm', '-', 'k', 'e', 'y', '-', 'v', '1', 0, 0, 0, 0, 0,
}

// canonicalBytes encodes the user-visible content of a result --
// sorted covers plus the two node counters -- the same fields spec §9
// says Result equality is defined over.
func canonicalBytes(res search.Result) []byte {
	covers := make([][]int, len(res.Covers))
	copy(covers, res.Covers)
	sort.Slice(covers, func(i, j int) bool {
		return fmt.Sprint(covers[i]) < fmt.Sprint(covers[j])
	})

	var sb strings.Builder
	for _, c := range covers {
		fmt.Fprintf(&sb, "%v;", c)
	}
	fmt.Fprintf(&sb, "|visited=%d|total=%s", res.VisitedNodes, res.TotalNodes.String())
	return []byte(sb.String())
}

// Checksum returns a highwayhash-256 digest of res's canonical content,
// used as a cheap pre-check before the full CompareResults comparison.
func Checksum(res search.Result) ([32]byte, error) {
	h, err := highwayhash.New(checksumKey[:])
	if err != nil {
		return [32]byte{}, err
	}
	h.Write(canonicalBytes(res))
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out, nil
}

// FarmHash64 returns a secondary 64-bit go-farm hash of the same
// canonical content, computed alongside Checksum so a single pass over a
// result populates both digests (mirrors checksum.go's refChecksum
// accumulating several hashed fields per record in one read).
func FarmHash64(res search.Result) uint64 {
	return farm.Hash64(canonicalBytes(res))
}

// ChecksumString renders a Checksum digest as a hex string, for CLI
// display and for embedding in log lines.
func ChecksumString(digest [32]byte) string {
	var sb strings.Builder
	for _, b := range digest {
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}
