// Command lfsrcrack predicts the next outputs of a GF(2)-linear
// pseudo-random generator from a list of its previous outputs.
//
// Usage:
//
//	lfsrcrack -c count [-b bits] [-j workers] [--max-memory size] [-v] [input_file]
//	lfsrcrack gen [--kind xorshift32] [--seed 1] -n count [--mask-bits 64]
//
// The input holds one base-10 integer per line (any whitespace works);
// stdin is read when no file is given. Predictions are printed one per
// line. At least 2·bits samples are required.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lfsrcrack:", err)
		os.Exit(1)
	}
}
