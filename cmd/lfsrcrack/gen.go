package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lfsrcrack/bitseq"
	"github.com/katalvlaran/lfsrcrack/predictor"
	"github.com/katalvlaran/lfsrcrack/prng"
	"github.com/katalvlaran/lfsrcrack/textio"
)

// genFlags holds the gen command's flag values.
type genFlags struct {
	kind     string
	seed     uint64
	count    int
	maskBits int
}

func newGenCmd() *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:   "gen -n count",
		Short: "Print outputs of a known GF(2)-linear generator",
		Long: `gen prints outputs of a reference generator, one per line, for feeding
back into lfsrcrack. Known kinds: ` + strings.Join(prng.Kinds(), ", ") + `.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.kind, "kind", "xorshift32", "generator kind")
	fl.Uint64Var(&f.seed, "seed", 1, "generator seed")
	fl.IntVarP(&f.count, "count", "n", 0, "number of outputs (required)")
	fl.IntVar(&f.maskBits, "mask-bits", predictor.MaxBits, "keep only this many low-order bits of each output")
	_ = cmd.MarkFlagRequired("count")

	return cmd
}

// runGen prints f.count masked outputs of the selected generator.
func runGen(cmd *cobra.Command, f genFlags) error {
	if f.count < 1 {
		return fmt.Errorf("count %d must be ≥ 1: %w", f.count, predictor.ErrInvalidConfig)
	}
	if f.maskBits < 1 || f.maskBits > predictor.MaxBits {
		return fmt.Errorf("mask-bits %d outside 1..%d: %w", f.maskBits, predictor.MaxBits, predictor.ErrInvalidConfig)
	}
	src, err := prng.New(f.kind, f.seed)
	if err != nil {
		return err
	}

	vals := prng.Take(src, f.count)
	mask := bitseq.Mask(f.maskBits)
	for i := range vals {
		vals[i] &= mask
	}

	return textio.WriteUints(cmd.OutOrStdout(), vals)
}
