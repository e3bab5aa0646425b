package predictor

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lfsrcrack/bitseq"
	"github.com/katalvlaran/lfsrcrack/bm"
	"github.com/katalvlaran/lfsrcrack/lfsr"
)

// Crack recovers one linear recurrence per bit position from samples.
//
// Steps:
//  1. Resolve options and validate positions (ErrInvalidConfig).
//  2. Require MinSamples(len(positions)) samples (ErrInsufficientData).
//  3. Check the recovery footprint against the memory limit (ErrAllocation).
//  4. In parallel, per position: extract its bit stream, run
//     Berlekamp–Massey, keep (L, C, last L bits).
//
// samples is only read. Nothing is computed when an error is returned.
func Crack(samples []uint64, opts ...Option) (*Model, error) {
	cfg := newConfig(opts...)
	positions, err := cfg.resolvePositions()
	if err != nil {
		return nil, err
	}
	if err = checkSamples(len(samples), len(positions)); err != nil {
		return nil, err
	}

	return crack(samples, positions, cfg)
}

// Validate reports every configuration problem in count and opts without
// touching any data. Callers reading samples from slow sources can fail
// fast before the read.
func Validate(count int, opts ...Option) error {
	cfg := newConfig(opts...)
	_, err := cfg.resolvePositions()

	return multierr.Append(err, checkCount(count))
}

// Predict cracks samples and returns the next count values, all or nothing.
// Configuration problems in opts and count are reported together.
func Predict(samples []uint64, count int, opts ...Option) ([]uint64, error) {
	if err := Validate(count, opts...); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	positions, err := cfg.resolvePositions()
	if err != nil {
		return nil, err
	}
	if err = checkSamples(len(samples), len(positions)); err != nil {
		return nil, err
	}
	if err = cfg.checkMemory(predictFootprint(len(positions), len(samples), count, cfg.workers)); err != nil {
		return nil, err
	}

	m, err := crack(samples, positions, cfg)
	if err != nil {
		return nil, err
	}

	return m.Predict(count)
}

// Predict steps every position's recurrence count times from its tail and
// assembles the predicted bits into count integers, in generation order.
func (m *Model) Predict(count int) ([]uint64, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	cfg := m.config()
	p := len(m.Positions)
	if err := cfg.checkMemory(predictFootprint(p, m.MaxDegree(), count, cfg.workers)); err != nil {
		return nil, err
	}

	start := time.Now()
	streams := make([][]uint8, p)
	parallelFor(p, cfg.workers, func(lo, hi int) {
		var s lfsr.Stepper
		for i := lo; i < hi; i++ {
			out := make([]uint8, count)
			s.Run(m.Recurrences[i].Poly, m.Tails[i], out)
			streams[i] = out
		}
	})
	cfg.logger.Info("prediction complete",
		zap.Int("positions", p),
		zap.Int("count", count),
		zap.Duration("elapsed", time.Since(start)),
	)

	return bitseq.Assemble(streams, m.Positions, count), nil
}

// crack runs the recovery pass over validated inputs.
func crack(samples []uint64, positions []int, cfg config) (*Model, error) {
	n := len(samples)
	if err := cfg.checkMemory(crackFootprint(len(positions), n, cfg.workers)); err != nil {
		return nil, err
	}

	m := &Model{
		Positions:   positions,
		Samples:     n,
		Recurrences: make([]bm.Recurrence, len(positions)),
		Tails:       make([][]uint8, len(positions)),
		cfg:         cfg,
	}

	start := time.Now()
	parallelFor(len(positions), cfg.workers, func(lo, hi int) {
		stream := make([]uint8, n)
		rec := bm.NewRecoverer(n)
		for i := lo; i < hi; i++ {
			bits := bitseq.Extract(samples, positions[i], stream)
			r := rec.Recover(bits)
			m.Recurrences[i] = r
			m.Tails[i] = append([]uint8(nil), bits[n-r.Degree:]...)
			cfg.logger.Debug("recovered bit position",
				zap.Int("position", positions[i]),
				zap.Int("degree", r.Degree),
				zap.Ints("taps", r.Taps()),
			)
		}
	})
	cfg.logger.Info("recovery complete",
		zap.Int("positions", len(positions)),
		zap.Int("samples", n),
		zap.Int("workers", min(cfg.workers, len(positions))),
		zap.Int("max_degree", m.MaxDegree()),
		zap.Duration("elapsed", time.Since(start)),
	)
	if suspect := m.Suspect(); len(suspect) > 0 {
		cfg.logger.Warn("recovered degree exceeds half the sample count; predictions for these positions are unreliable",
			zap.Ints("positions", suspect),
			zap.Int("samples", n),
		)
	}

	return m, nil
}

// config returns the model's run config, defaulted for hand-built models.
func (m *Model) config() config {
	cfg := m.cfg
	if cfg.workers < 1 || cfg.logger == nil {
		def := newConfig()
		if cfg.workers < 1 {
			cfg.workers = def.workers
		}
		if cfg.logger == nil {
			cfg.logger = def.logger
		}
	}

	return cfg
}

// resolvePositions returns the positions to crack, validating them.
func (c config) resolvePositions() ([]int, error) {
	if c.positions == nil {
		if c.bits < 1 || c.bits > MaxBits {
			return nil, fmt.Errorf("bit width %d outside 1..%d: %w", c.bits, MaxBits, ErrInvalidConfig)
		}
		positions := make([]int, c.bits)
		for i := range positions {
			positions[i] = i
		}

		return positions, nil
	}

	if len(c.positions) == 0 {
		return nil, fmt.Errorf("no bit positions given: %w", ErrInvalidConfig)
	}
	var err error
	var seen uint64
	for _, p := range c.positions {
		switch {
		case p < 0 || p >= MaxBits:
			err = multierr.Append(err, fmt.Errorf("bit position %d outside 0..%d: %w", p, MaxBits-1, ErrInvalidConfig))
		case seen&(1<<uint(p)) != 0:
			err = multierr.Append(err, fmt.Errorf("bit position %d repeated: %w", p, ErrInvalidConfig))
		default:
			seen |= 1 << uint(p)
		}
	}
	if err != nil {
		return nil, err
	}

	return append([]int(nil), c.positions...), nil
}

// checkMemory compares an estimated footprint with the configured limit.
func (c config) checkMemory(need int64) error {
	if c.memLimit > 0 && need > c.memLimit {
		return fmt.Errorf("need %d bytes, limit %d: %w", need, c.memLimit, ErrAllocation)
	}

	return nil
}

// checkCount validates the number of values to predict.
func checkCount(count int) error {
	if count < 1 {
		return fmt.Errorf("predict count %d must be ≥ 1: %w", count, ErrInvalidConfig)
	}

	return nil
}

// checkSamples enforces the minimum sample count for p positions.
func checkSamples(n, p int) error {
	if need := MinSamples(p); n < need {
		return fmt.Errorf("need at least %d samples for %d bit positions, got %d: %w", need, p, n, ErrInsufficientData)
	}

	return nil
}

// crackFootprint estimates the bytes held during recovery: per worker a
// bit stream plus three (n+1)-coefficient polynomials, and per position a
// polynomial and tail of at most n+1 and n bits.
func crackFootprint(positions, n, workers int) int64 {
	w := int64(min(workers, positions))
	nn := int64(n)

	return w*(nn+3*(nn+1)) + int64(positions)*(2*nn+1)
}

// predictFootprint estimates the bytes held during prediction of count
// values: per position the predicted bits, per worker a stepping buffer of
// maxDegree+count bits, and the assembled integers.
func predictFootprint(positions, maxDegree, count, workers int) int64 {
	w := int64(min(workers, positions))
	k := int64(count)

	return int64(positions)*k + w*(int64(maxDegree)+k) + 8*k
}
