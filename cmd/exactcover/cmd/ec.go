package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
	"v.io/x/lib/cmdline"

	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/bitrow"
	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/ecfile"
	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/search"
)

type ecFlags struct {
	in        *string
	out       *string
	plus      *bool
	timeLimit *float64
	compress  *string
}

// newCmdEC implements the `ec -i <path> -o <path> [-t <seconds>]
// [-p|--plus] [-compress base|gzip|zstd]` contract of spec.md §6 /
// SPEC_FULL.md §4.12.
func newCmdEC() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "ec",
		Short: "Run the exact cover search over an instance file",
	}
	flags := ecFlags{
		in:        cmd.Flags.String("i", "", "Input instance path (required)"),
		out:       cmd.Flags.String("o", "", "Output result path (required)"),
		plus:      cmd.Flags.Bool("p", false, "Use the EC-Plus cardinality-based algorithm instead of the base version"),
		timeLimit: cmd.Flags.Float64("t", 0, "Soft CPU-time deadline in seconds; 0 means no limit"),
		compress:  cmd.Flags.String("compress", "base", "On-disk codec for -o: base, gzip, or zstd"),
	}
	cmd.Flags.BoolVar(flags.plus, "plus", false, "Alias for -p")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return errors.Errorf("ec takes no positional arguments, but got %v", argv)
		}
		if *flags.in == "" || *flags.out == "" {
			return errors.New("ec: both -i and -o are required")
		}
		return runEC(flags)
	})
	return cmd
}

// runEC loads an instance, runs the search with a SIGINT-wired stop
// flag, and writes the result, grounded on
// cmd/bio-pamtool/cmd/main.go's newCmdView reader-pipeline shape and
// spec §9's external-interface note that signal integration belongs
// outside the search core.
func runEC(flags ecFlags) error {
	ctx := context.Background()

	codec, err := parseCompressFlag(*flags.compress)
	if err != nil {
		return errors.Wrap(err, "ec")
	}

	in, err := file.Open(ctx, *flags.in)
	if err != nil {
		return errors.Wrapf(err, "ec: opening instance %q", *flags.in)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil {
			log.Error.Printf("ec: closing instance %q: %v", *flags.in, cerr)
		}
	}()

	matrix, meta, err := ecfile.ReadInstance(in.Reader(ctx))
	if err != nil {
		return errors.Wrap(err, "ec: reading instance")
	}

	rows, err := bitrow.NewStore(matrix)
	if err != nil {
		return errors.Wrap(err, "ec: building row store")
	}
	if empty := rows.EmptyColumns(); len(empty) > 0 {
		log.Error.Printf("ec: instance has %d all-zero column(s); no cover can exist: %v", len(empty), empty)
	}

	var stopFlag atomic.Bool
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			log.Error.Printf("ec: received interrupt, stopping search cooperatively")
			stopFlag.Store(true)
		}
	}()

	opts := search.Options{
		Plus:      *flags.plus,
		TimeLimit: time.Duration(*flags.timeLimit * float64(time.Second)),
		StopFlag:  &stopFlag,
	}
	res := search.Run(ctx, rows, opts)

	log.Printf("ec: visited %d/%s nodes (%.4f%%) in %s", res.VisitedNodes, res.TotalNodes.String(), res.VisitedPercentage(), res.ExecutionTime)
	if res.Stopped {
		log.Error.Printf("ec: search stopped before completion (time limit reached: %t)", res.TimeLimitReached)
	}

	sudokuDim := 0
	if meta.IsSudoku {
		sudokuDim = meta.Dim
	}
	return writeResult(ctx, *flags.out, codec, matrix, res, sudokuDim)
}

// parseCompressFlag maps the `-compress` flag's literal values to a
// Codec; "base" means uncompressed (SPEC_FULL.md §4.12), distinct from
// ecfile.CodecForPath's extension-sniffing used by `gen`.
func parseCompressFlag(v string) (ecfile.Codec, error) {
	switch v {
	case "base", "":
		return ecfile.CodecNone, nil
	case "gzip":
		return ecfile.CodecGzip, nil
	case "zstd":
		return ecfile.CodecZstd, nil
	default:
		return "", errors.Errorf("unknown -compress value %q, want base, gzip, or zstd", v)
	}
}

func writeResult(ctx context.Context, outPath string, codec ecfile.Codec, matrix [][]bool, res search.Result, sudokuDim int) error {
	out, err := file.Create(ctx, outPath)
	if err != nil {
		return errors.Wrapf(err, "ec: creating output %q", outPath)
	}
	defer func() {
		if cerr := out.Close(ctx); cerr != nil {
			log.Error.Printf("ec: closing output %q: %v", outPath, cerr)
		}
	}()

	wc, err := ecfile.WrapWriter(out.Writer(ctx), codec)
	if err != nil {
		return errors.Wrap(err, "ec: wrapping output codec")
	}
	if err := ecfile.WriteResult(wc, matrix, res, sudokuDim); err != nil {
		return errors.Wrap(err, "ec: writing result")
	}
	return wc.Close()
}
