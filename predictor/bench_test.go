package predictor_test

import (
	"testing"

	"github.com/katalvlaran/lfsrcrack/predictor"
	"github.com/katalvlaran/lfsrcrack/prng"
)

// benchmarkPredict cracks bits positions of n xorshift128 outputs and
// predicts 16 values, with the given pool size.
func benchmarkPredict(b *testing.B, n, bits, workers int) {
	samples := prng.Take(prng.NewXorShift128(1), n)
	opts := []predictor.Option{predictor.WithBits(bits), predictor.WithWorkers(workers)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := predictor.Predict(samples, 16, opts...); err != nil {
			b.Fatalf("Predict failed: %v", err)
		}
	}
}

// BenchmarkPredict_32Bits_1Worker is the sequential baseline.
func BenchmarkPredict_32Bits_1Worker(b *testing.B) { benchmarkPredict(b, 1024, 32, 1) }

// BenchmarkPredict_32Bits_4Workers shows the per-position fan-out.
func BenchmarkPredict_32Bits_4Workers(b *testing.B) { benchmarkPredict(b, 1024, 32, 4) }

// BenchmarkPredict_64Bits_8Workers spreads 64 positions over 8 workers.
func BenchmarkPredict_64Bits_8Workers(b *testing.B) { benchmarkPredict(b, 1024, 64, 8) }
