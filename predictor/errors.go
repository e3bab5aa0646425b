// SPDX-License-Identifier: MIT
// Package: lfsrcrack/predictor
//
// errors.go — sentinel errors for the predictor package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failing check.
//   • Every error is raised before computation starts; recovery and
//     stepping themselves cannot fail.

package predictor

import "errors"

// ErrInvalidConfig indicates a bit width outside 1..MaxBits, a bit position
// outside 0..MaxBits-1 or repeated, or a predict count below 1.
var ErrInvalidConfig = errors.New("predictor: invalid configuration")

// ErrInsufficientData indicates fewer than MinSamples(positions) samples.
// Recovery would be unreliable, so nothing is computed.
var ErrInsufficientData = errors.New("predictor: insufficient data")

// ErrAllocation indicates that the buffers a run needs exceed the memory
// limit configured with WithMemoryLimit.
var ErrAllocation = errors.New("predictor: allocation exceeds memory limit")
