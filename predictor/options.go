// SPDX-License-Identifier: MIT
// Package: lfsrcrack/predictor
//
// options.go — functional options for Crack and Predict.
//
// Contract:
//   • Values that come from users (bit width, positions) are validated when
//     the run starts and reported as ErrInvalidConfig.
//   • Values only a programmer can get wrong (workers, logger, memory
//     limit) panic in the option constructor.
//   • Later options override earlier ones; WithPositions beats WithBits.

package predictor

import (
	"runtime"

	"go.uber.org/zap"
)

const (
	// MaxBits is the widest supported sample.
	MaxBits = 64

	// DefaultBits cracks every bit of a 64-bit sample.
	DefaultBits = MaxBits

	// SamplesPerPosition is the minimum number of samples required per
	// cracked bit position.
	SamplesPerPosition = 2
)

// Option customizes a run by mutating its config before validation.
type Option func(*config)

// config aggregates every knob of a run. Defaults come from newConfig.
type config struct {
	bits      int
	positions []int // nil → 0..bits-1
	workers   int
	logger    *zap.Logger
	memLimit  int64 // bytes; 0 → unlimited
}

// newConfig applies opts in order over the documented defaults.
func newConfig(opts ...Option) config {
	c := config{
		bits:    DefaultBits,
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithBits cracks the low-order positions 0..b-1. b must be in 1..MaxBits;
// other values surface as ErrInvalidConfig. Clears WithPositions.
func WithBits(b int) Option {
	return func(c *config) {
		c.bits = b
		c.positions = nil
	}
}

// WithPositions cracks exactly the listed bit positions, in the listed
// order. Each must be in 0..MaxBits-1 and appear once.
func WithPositions(positions ...int) Option {
	p := append([]int{}, positions...)

	return func(c *config) {
		c.positions = p
	}
}

// WithWorkers sets the worker pool size. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("predictor: WithWorkers(n<1)")
	}

	return func(c *config) {
		c.workers = n
	}
}

// WithLogger attaches a logger for progress and diagnostics. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("predictor: WithLogger(nil)")
	}

	return func(c *config) {
		c.logger = l
	}
}

// WithMemoryLimit caps the bytes a run may allocate for scratch, recovered
// state and predictions; 0 removes the cap. Panics if bytes < 0.
func WithMemoryLimit(bytes int64) Option {
	if bytes < 0 {
		panic("predictor: WithMemoryLimit(bytes<0)")
	}

	return func(c *config) {
		c.memLimit = bytes
	}
}

// MinSamples returns the number of samples required to crack the given
// number of bit positions.
func MinSamples(positions int) int {
	return SamplesPerPosition * positions
}
