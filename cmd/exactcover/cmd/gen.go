package cmd

import (
	"context"
	"math/rand"
	"time"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
	"v.io/x/lib/cmdline"

	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/ecfile"
	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/instance"
	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/sudoku"
)

// newCmdGen groups the `rand` and `sudoku` instance generators under a
// `gen` parent, mirroring cmd/bio-pamtool/cmd/main.go's flat sibling
// layout generalized one level (spec SPEC_FULL.md §4.12 CLI surface).
func newCmdGen() *cmdline.Command {
	return &cmdline.Command{
		Name:  "gen",
		Short: "Generate exact cover instances",
		Children: []*cmdline.Command{
			newCmdGenRand(),
			newCmdGenSudoku(),
		},
	}
}

// newCmdGenRand implements `gen rand -o <path> -m <int> -n <int> -p
// <float> [-g|--guarantee]` per SPEC_FULL.md §4.12.
func newCmdGenRand() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "rand",
		Short: "Generate a random exact cover instance",
	}
	out := cmd.Flags.String("o", "", "Output instance path (required)")
	n := cmd.Flags.Int("n", 20, "Number of candidate rows")
	m := cmd.Flags.Int("m", 10, "Number of constraint columns")
	prob := cmd.Flags.Float64("p", 0.3, "Per-cell Bernoulli probability of a 1")
	guarantee := cmd.Flags.Bool("g", false, "Seed the identity matrix so a cover is guaranteed to exist")
	cmd.Flags.BoolVar(guarantee, "guarantee", false, "Alias for -g")
	seed := cmd.Flags.Int64("seed", 0, "Random seed; 0 picks a time-derived seed")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return errors.Errorf("gen rand takes no positional arguments, but got %v", argv)
		}
		if *out == "" {
			return errors.New("gen rand: -o is required")
		}
		rng := newRNG(*seed)
		inst, err := instance.GenerateRandom(rng, *n, *m, *prob, *guarantee)
		if err != nil {
			return errors.Wrap(err, "gen rand: generating instance")
		}
		meta := ecfile.InstanceMeta{
			GeneratedAt:  inst.GeneratedAt,
			Prob:         inst.Prob,
			GuaranteeSol: inst.GuaranteeSol,
			FixedZeroCol: inst.FixedZeroCol,
		}
		return writeInstance(context.Background(), *out, inst.Matrix, meta)
	})
	return cmd
}

// newCmdGenSudoku implements `gen sudoku -o <path> -d <dim> -diff
// <float>` per SPEC_FULL.md §4.12.
func newCmdGenSudoku() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "sudoku",
		Short: "Generate a Sudoku puzzle encoded as an exact cover instance",
	}
	out := cmd.Flags.String("o", "", "Output instance path (required)")
	dim := cmd.Flags.Int("d", 9, "Puzzle side length; must be a perfect square")
	difficulty := cmd.Flags.Float64("diff", 0.5, "Fraction of cells to blank out, in [0, 1]")
	seed := cmd.Flags.Int64("seed", 0, "Random seed; 0 picks a time-derived seed")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return errors.Errorf("gen sudoku takes no positional arguments, but got %v", argv)
		}
		if *out == "" {
			return errors.New("gen sudoku: -o is required")
		}
		rng := newRNG(*seed)

		board, err := sudoku.NewBoard(*dim)
		if err != nil {
			return errors.Wrap(err, "gen sudoku: allocating board")
		}
		board.Generate(rng)
		puzzle := board.Puzzle(rng, *difficulty)

		matrix, _ := sudoku.Encode(puzzle)
		meta := ecfile.InstanceMeta{
			GeneratedAt: time.Now(),
			IsSudoku:    true,
			Dim:         *dim,
			Difficulty:  *difficulty,
			BoardText:   puzzle.String(),
		}
		return writeInstance(context.Background(), *out, matrix, meta)
	})
	return cmd
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func writeInstance(ctx context.Context, outPath string, matrix [][]bool, meta ecfile.InstanceMeta) error {
	out, err := file.Create(ctx, outPath)
	if err != nil {
		return errors.Wrapf(err, "gen: creating output %q", outPath)
	}
	defer out.Close(ctx)

	wc, err := ecfile.WrapWriter(out.Writer(ctx), ecfile.CodecForPath(outPath))
	if err != nil {
		return errors.Wrap(err, "gen: wrapping output codec")
	}
	if err := ecfile.WriteInstance(wc, matrix, meta); err != nil {
		return errors.Wrap(err, "gen: writing instance")
	}
	return wc.Close()
}
