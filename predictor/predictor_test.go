package predictor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lfsrcrack/bm"
	"github.com/katalvlaran/lfsrcrack/lfsr"
	"github.com/katalvlaran/lfsrcrack/predictor"
	"github.com/katalvlaran/lfsrcrack/prng"
)

// split draws known+future outputs from src.
func split(src prng.Source, known, future int) ([]uint64, []uint64) {
	all := prng.Take(src, known+future)

	return all[:known], all[known:]
}

// bitSliced8 builds an 8-bit generator whose bit p follows its own small
// register. Calling it twice gives two generators in the same state.
func bitSliced8(t *testing.T) *prng.BitSliced {
	t.Helper()
	specs := []struct {
		poly []uint8
		seed []uint8
	}{
		{poly: []uint8{1, 1, 1}, seed: []uint8{0, 1}},                   // period 3
		{poly: []uint8{1, 0, 1, 1}, seed: []uint8{1, 0, 0}},             // x^3 primitive
		{poly: []uint8{1, 1, 0, 0, 1}, seed: []uint8{1, 0, 0, 0}},       // x^4 primitive
		{poly: []uint8{1, 1}, seed: []uint8{1}},                         // constant one
		{poly: []uint8{1, 0, 1, 0, 0, 1}, seed: []uint8{0, 0, 1, 1, 0}}, // x^5 primitive
		{poly: []uint8{1, 0, 0, 1}, seed: []uint8{1, 1, 0}},             // period 3, degree 3
		{poly: []uint8{1, 1, 0, 0, 0, 0, 0, 1}, seed: []uint8{1, 0, 1, 1, 0, 0, 1}},
		{poly: []uint8{1, 0, 1}, seed: []uint8{1, 0}}, // alternating
	}
	regs := make([]*lfsr.Fibonacci, len(specs))
	for i, s := range specs {
		r, err := lfsr.NewFibonacci(s.poly, s.seed)
		require.NoError(t, err)
		regs[i] = r
	}

	return prng.NewBitSliced(regs...)
}

// TestPredict_XorShift32 cracks all 32 bits from 100 outputs.
func TestPredict_XorShift32(t *testing.T) {
	known, future := split(prng.NewXorShift32(2463534242), 100, 16)

	got, err := predictor.Predict(known, len(future), predictor.WithBits(32))
	require.NoError(t, err)
	assert.Equal(t, future, got)
}

// TestPredict_XorShift32_Default64Bits: the silent top half predicts zeros.
func TestPredict_XorShift32_Default64Bits(t *testing.T) {
	known, future := split(prng.NewXorShift32(99), 128, 8)

	got, err := predictor.Predict(known, len(future))
	require.NoError(t, err)
	assert.Equal(t, future, got)
}

// TestPredict_XorShift128 needs 2·128 samples per bit.
func TestPredict_XorShift128(t *testing.T) {
	known, future := split(prng.NewXorShift128(42), 300, 16)

	got, err := predictor.Predict(known, len(future), predictor.WithBits(32), predictor.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, future, got)
}

// TestPredict_FullIntegerReconstruction compares with independently stepped
// per-bit reference registers.
func TestPredict_FullIntegerReconstruction(t *testing.T) {
	ref := bitSliced8(t)
	known := prng.Take(ref, 40)
	want := prng.Take(ref, 20)

	got, err := predictor.Predict(known, 20, predictor.WithBits(8))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestCrack_RecoversPerBitRegisters checks the degrees of the 8-bit fixture.
func TestCrack_RecoversPerBitRegisters(t *testing.T) {
	known := prng.Take(bitSliced8(t), 40)

	m, err := predictor.Crack(known, predictor.WithBits(8))
	require.NoError(t, err)
	require.Len(t, m.Recurrences, 8)

	degrees := make([]int, 8)
	for i, r := range m.Recurrences {
		degrees[i] = r.Degree
		assert.Len(t, m.Tails[i], r.Degree, "tail length of position %d", i)
		assert.Equal(t, -1, r.Check(extract(known, i)), "position %d", i)
	}
	assert.Equal(t, []int{2, 3, 4, 1, 5, 2, 7, 2}, degrees)
	assert.Equal(t, 7, m.MaxDegree())
	assert.Empty(t, m.Suspect())
	assert.Equal(t, 40, m.Samples)
}

// extract is a test-local BitExtractor so assertions do not depend on bitseq.
func extract(samples []uint64, p int) []uint8 {
	out := make([]uint8, len(samples))
	for i, s := range samples {
		out[i] = uint8(s>>uint(p)) & 1
	}

	return out
}

// TestPredict_Deterministic runs the same input with different pool sizes.
func TestPredict_Deterministic(t *testing.T) {
	known, _ := split(prng.NewXorShift32(7), 80, 0)

	first, err := predictor.Predict(known, 12, predictor.WithBits(32), predictor.WithWorkers(1))
	require.NoError(t, err)
	for _, w := range []int{1, 2, 5, 32, 64} {
		again, err := predictor.Predict(known, 12, predictor.WithBits(32), predictor.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, first, again, "workers=%d", w)
	}
}

// TestPredict_BitIndependence permutes the processing order of positions.
func TestPredict_BitIndependence(t *testing.T) {
	known := prng.Take(bitSliced8(t), 40)

	forward, err := predictor.Predict(known, 10, predictor.WithPositions(0, 1, 2, 3, 4, 5, 6, 7))
	require.NoError(t, err)
	backward, err := predictor.Predict(known, 10, predictor.WithPositions(7, 6, 5, 4, 3, 2, 1, 0))
	require.NoError(t, err)
	shuffled, err := predictor.Predict(known, 10, predictor.WithPositions(3, 7, 0, 5, 1, 6, 2, 4), predictor.WithWorkers(3))
	require.NoError(t, err)

	assert.Equal(t, forward, backward)
	assert.Equal(t, forward, shuffled)
}

// TestPredict_PositionSubset cracks only some bits; others stay zero.
func TestPredict_PositionSubset(t *testing.T) {
	known, future := split(prng.NewXorShift32(5), 100, 8)

	got, err := predictor.Predict(known, len(future), predictor.WithPositions(4, 20, 31))
	require.NoError(t, err)
	mask := uint64(1<<4 | 1<<20 | 1<<31)
	for i := range future {
		assert.Equal(t, future[i]&mask, got[i], "value %d", i)
	}
}

// TestPredict_AllZero recovers degree 0 and predicts zeros.
func TestPredict_AllZero(t *testing.T) {
	m, err := predictor.Crack(make([]uint64, 20), predictor.WithBits(10))
	require.NoError(t, err)
	for _, r := range m.Recurrences {
		assert.Equal(t, 0, r.Degree)
	}

	got, err := m.Predict(50)
	require.NoError(t, err)
	assert.Equal(t, make([]uint64, 50), got)
}

// TestPredict_Undersized rejects fewer than 2·B samples for any B.
func TestPredict_Undersized(t *testing.T) {
	for _, b := range []int{1, 8, 33, 64} {
		samples := make([]uint64, 2*b-1)

		got, err := predictor.Predict(samples, 5, predictor.WithBits(b))
		assert.ErrorIs(t, err, predictor.ErrInsufficientData, "bits=%d", b)
		assert.Nil(t, got, "no partial output, bits=%d", b)

		_, err = predictor.Crack(samples, predictor.WithBits(b))
		assert.ErrorIs(t, err, predictor.ErrInsufficientData, "bits=%d", b)
	}

	_, err := predictor.Predict([]uint64{1, 2, 3, 4}, 1, predictor.WithBits(2))
	assert.NoError(t, err, "exactly 2·B samples is enough")
}

// TestPredict_InvalidConfig covers the configuration error class.
func TestPredict_InvalidConfig(t *testing.T) {
	samples := make([]uint64, 200)
	tests := []struct {
		name  string
		count int
		opts  []predictor.Option
	}{
		{name: "zero bits", count: 1, opts: []predictor.Option{predictor.WithBits(0)}},
		{name: "65 bits", count: 1, opts: []predictor.Option{predictor.WithBits(65)}},
		{name: "zero count", count: 0},
		{name: "negative count", count: -3},
		{name: "no positions", count: 1, opts: []predictor.Option{predictor.WithPositions()}},
		{name: "position 64", count: 1, opts: []predictor.Option{predictor.WithPositions(1, 64)}},
		{name: "negative position", count: 1, opts: []predictor.Option{predictor.WithPositions(-1)}},
		{name: "repeated position", count: 1, opts: []predictor.Option{predictor.WithPositions(3, 5, 3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := predictor.Predict(samples, tt.count, tt.opts...)
			assert.ErrorIs(t, err, predictor.ErrInvalidConfig)
			assert.Nil(t, got)
		})
	}
}

// TestPredict_InvalidConfigBeforeData: configuration is checked before the
// sample count, and both bad options are reported.
func TestPredict_InvalidConfigBeforeData(t *testing.T) {
	_, err := predictor.Predict(nil, 0, predictor.WithBits(99))
	require.ErrorIs(t, err, predictor.ErrInvalidConfig)
	assert.NotErrorIs(t, err, predictor.ErrInsufficientData)
	assert.Contains(t, err.Error(), "bit width 99")
	assert.Contains(t, err.Error(), "predict count 0")
}

// TestWithBits_OverridesPositions: the later option wins.
func TestWithBits_OverridesPositions(t *testing.T) {
	m, err := predictor.Crack(make([]uint64, 8), predictor.WithPositions(40, 41), predictor.WithBits(3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, m.Positions)
}

// TestMemoryLimit rejects runs whose buffers do not fit.
func TestMemoryLimit(t *testing.T) {
	samples := make([]uint64, 1000)

	_, err := predictor.Crack(samples, predictor.WithBits(64), predictor.WithMemoryLimit(4096))
	assert.ErrorIs(t, err, predictor.ErrAllocation)

	_, err = predictor.Predict(samples, 10, predictor.WithBits(64), predictor.WithMemoryLimit(4096))
	assert.ErrorIs(t, err, predictor.ErrAllocation)

	_, err = predictor.Predict(samples, 10, predictor.WithBits(1), predictor.WithWorkers(1), predictor.WithMemoryLimit(1<<20))
	assert.NoError(t, err)
}

// TestModel_PredictTwice serves two predictions from one crack.
func TestModel_PredictTwice(t *testing.T) {
	known, future := split(prng.NewXorShift32(11), 64, 20)
	m, err := predictor.Crack(known, predictor.WithBits(32))
	require.NoError(t, err)

	short, err := m.Predict(5)
	require.NoError(t, err)
	long, err := m.Predict(20)
	require.NoError(t, err)

	assert.Equal(t, future[:5], short)
	assert.Equal(t, future, long)

	_, err = m.Predict(0)
	assert.ErrorIs(t, err, predictor.ErrInvalidConfig)
}

// TestModel_HandBuilt predicts from a model assembled without Crack.
func TestModel_HandBuilt(t *testing.T) {
	m := &predictor.Model{
		Positions:   []int{0, 3},
		Samples:     4,
		Recurrences: []bm.Recurrence{{Degree: 1, Poly: []uint8{1, 1}}, {Degree: 2, Poly: []uint8{1, 0, 1}}},
		Tails:       [][]uint8{{1}, {1, 0}},
	}

	got, err := m.Predict(4)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0b1001, 0b0001, 0b1001, 0b0001}, got)
}

// TestSuspect_LoggedAsWarning: a late single one inflates the degree to n.
func TestSuspect_LoggedAsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	samples := []uint64{0, 0, 0, 0, 0, 0, 0, 1}

	m, err := predictor.Crack(samples, predictor.WithBits(1), predictor.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 8, m.Recurrences[0].Degree)
	assert.Equal(t, []int{0}, m.Suspect())

	warn := logs.FilterLevelExact(zapcore.WarnLevel)
	require.Equal(t, 1, warn.Len())
	assert.Equal(t, []interface{}{0}, toInterfaces(warn.All()[0].ContextMap()["positions"]))
	assert.Equal(t, 1, logs.FilterMessage("recovered bit position").Len())
	assert.Equal(t, 1, logs.FilterMessage("recovery complete").Len())
}

// toInterfaces normalizes the observer's array encoding of zap.Ints.
func toInterfaces(v interface{}) []interface{} {
	switch vs := v.(type) {
	case []interface{}:
		return vs
	case []int:
		out := make([]interface{}, len(vs))
		for i, x := range vs {
			out[i] = x
		}

		return out
	default:
		return nil
	}
}

// TestOptions_PanicOnProgrammerErrors mirrors the option contract.
func TestOptions_PanicOnProgrammerErrors(t *testing.T) {
	assert.Panics(t, func() { predictor.WithWorkers(0) })
	assert.Panics(t, func() { predictor.WithLogger(nil) })
	assert.Panics(t, func() { predictor.WithMemoryLimit(-1) })
	assert.NotPanics(t, func() { predictor.WithBits(1000) }, "user input is validated at run time")
}

// TestMinSamples is twice the number of positions.
func TestMinSamples(t *testing.T) {
	assert.Equal(t, 128, predictor.MinSamples(64))
	assert.Equal(t, 2, predictor.MinSamples(1))
}

// TestValidate checks configuration without any samples.
func TestValidate(t *testing.T) {
	assert.NoError(t, predictor.Validate(1))
	assert.NoError(t, predictor.Validate(16, predictor.WithPositions(0, 63)))
	assert.ErrorIs(t, predictor.Validate(0), predictor.ErrInvalidConfig)
	assert.ErrorIs(t, predictor.Validate(3, predictor.WithBits(-1)), predictor.ErrInvalidConfig)
}
