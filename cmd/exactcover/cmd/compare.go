package cmd

import (
	"context"
	"time"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
	"v.io/x/lib/cmdline"

	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/ecfile"
	execcmp "github.com/LucaCtt/ASD-Cotti-Miorada/internal/exec"
	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/search"
)

// pathList accumulates one value per `-i` occurrence, implementing
// flag.Value so `compare -i a -i b -i c` collects all three paths
// (stdlib flag.Value is the idiomatic way cmdline's own flag.FlagSet
// supports repeatable flags; no corpus example needed a multi-valued
// flag, so there is no richer convention to follow here).
type pathList []string

func (p *pathList) String() string { return "" }

func (p *pathList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

// newCmdCompare implements `compare -i <path...>` per SPEC_FULL.md
// §4.12: one `-i` per result file, at least two required.
func newCmdCompare() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "compare",
		Short: "Compare two or more result files for equality and report the fastest",
	}
	var paths pathList
	cmd.Flags.Var(&paths, "i", "Result file path; repeat for each file to compare (at least two required)")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return errors.Errorf("compare takes no positional arguments, but got %v", argv)
		}
		if len(paths) < 2 {
			return errors.Errorf("compare: at least two -i result pathnames are required, got %v", []string(paths))
		}
		return runCompare(paths)
	})
	return cmd
}

// runCompare parses every result file in paths and reports equality plus
// the fastest execution time, grounded on
// original_source/exact-cover/compare.py's compare_results.
func runCompare(paths []string) error {
	ctx := context.Background()

	results := make([]search.Result, 0, len(paths))
	times := make([]time.Duration, 0, len(paths))
	for _, p := range paths {
		res, err := readResult(ctx, p)
		if err != nil {
			return errors.Wrapf(err, "compare: reading %q", p)
		}
		results = append(results, res)
		times = append(times, res.ExecutionTime)

		sum, err := execcmp.Checksum(res)
		if err != nil {
			return errors.Wrapf(err, "compare: checksumming %q", p)
		}
		log.Printf("compare: %s checksum=%s farmhash=%x", p, execcmp.ChecksumString(sum), execcmp.FarmHash64(res))
	}

	allEqual, fastestIdx, fastestTime := execcmp.CompareResults(results, times)
	if !allEqual {
		log.Error.Printf("compare: results differ across inputs")
	}
	log.Printf("compare: all equal=%t fastest=%q (%s)", allEqual, paths[fastestIdx], fastestTime)
	return nil
}

func readResult(ctx context.Context, path string) (search.Result, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return search.Result{}, err
	}
	defer in.Close(ctx)

	r, err := ecfile.WrapReader(in.Reader(ctx), ecfile.CodecForPath(path))
	if err != nil {
		return search.Result{}, err
	}
	return ecfile.ReadResult(r)
}
