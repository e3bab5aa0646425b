package main

import (
	"fmt"
	"io"
	"os"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/katalvlaran/lfsrcrack/predictor"
	"github.com/katalvlaran/lfsrcrack/textio"
)

// rootFlags holds the prediction command's flag values.
type rootFlags struct {
	count     int
	bits      int
	workers   int
	maxMemory string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "lfsrcrack -c count [-b bits] [input_file]",
		Short: "Predict future outputs of a GF(2)-linear PRNG",
		Long: `lfsrcrack recovers, for every low-order bit position, the shortest linear
recurrence that reproduces the observed outputs (Berlekamp–Massey over GF(2))
and steps those recurrences forward to predict the next outputs.

The input holds one base-10 unsigned integer per line; stdin is read when no
file is given. At least 2·bits samples are required.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.count, "count", "c", 0, "how many future values to predict (required)")
	fl.IntVarP(&f.bits, "bits", "b", predictor.DefaultBits, fmt.Sprintf("number of low-order bits to crack (1..%d)", predictor.MaxBits))
	fl.IntVarP(&f.workers, "workers", "j", 0, "worker goroutines (0 = GOMAXPROCS)")
	fl.StringVar(&f.maxMemory, "max-memory", "", "abort when buffers would exceed this size, e.g. 512MiB (empty = unlimited)")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log per-bit recovery details")
	_ = cmd.MarkFlagRequired("count")

	cmd.AddCommand(newGenCmd())

	return cmd
}

// runPredict validates the configuration, reads the samples and prints the
// predictions. Nothing reaches stdout unless every step succeeds.
func runPredict(cmd *cobra.Command, args []string, f rootFlags) error {
	log := newLogger(cmd.ErrOrStderr(), f.verbose)
	defer func() { _ = log.Sync() }()

	undo, err := maxprocs.Set(maxprocs.Logger(log.Sugar().Debugf))
	if err == nil {
		defer undo()
	}

	opts, err := f.options(log)
	if err != nil {
		return err
	}
	if err = predictor.Validate(f.count, opts...); err != nil {
		return err
	}

	samples, err := readSamples(cmd, args)
	if err != nil {
		return err
	}
	log.Debug("samples loaded", zap.Int("samples", len(samples)))

	next, err := predictor.Predict(samples, f.count, opts...)
	if err != nil {
		return err
	}

	return textio.WriteUints(cmd.OutOrStdout(), next)
}

// options translates flags into predictor options.
func (f rootFlags) options(log *zap.Logger) ([]predictor.Option, error) {
	opts := []predictor.Option{
		predictor.WithBits(f.bits),
		predictor.WithLogger(log),
	}
	switch {
	case f.workers < 0:
		return nil, fmt.Errorf("workers %d must be ≥ 0: %w", f.workers, predictor.ErrInvalidConfig)
	case f.workers > 0:
		opts = append(opts, predictor.WithWorkers(f.workers))
	}
	if f.maxMemory != "" {
		limit, err := units.RAMInBytes(f.maxMemory)
		if err != nil || limit < 0 {
			return nil, fmt.Errorf("max-memory %q: %w", f.maxMemory, predictor.ErrInvalidConfig)
		}
		opts = append(opts, predictor.WithMemoryLimit(limit))
	}

	return opts, nil
}

// readSamples reads from the named file, or from the command's stdin.
func readSamples(cmd *cobra.Command, args []string) ([]uint64, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	return textio.ReadUints(r)
}
