package bootstrap_test

import (
	"testing"

	"github.com/katalvlaran/lvlstat/bootstrap"
)

// benchmarkSE is a helper that runs SE on n observations with nReps
// replicates. It resets the timer after setup and fails on unexpected
// errors.
func benchmarkSE(b *testing.B, n, nReps int) {
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i % 13) // predictable, non-constant values
	}
	opts := bootstrap.Options{NReps: nReps, Seed: 1}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := bootstrap.SE(x, nil, &opts); err != nil {
			b.Fatalf("SE failed: %v", err)
		}
	}
}

// BenchmarkSE_SmallSample benchmarks a typical small sample at the
// default replicate count.
func BenchmarkSE_SmallSample(b *testing.B) {
	benchmarkSE(b, 50, bootstrap.DefaultNReps)
}

// BenchmarkSE_MediumSample benchmarks a medium sample with fewer
// replicates.
func BenchmarkSE_MediumSample(b *testing.B) {
	benchmarkSE(b, 500, 2000)
}

// BenchmarkSE_ManyReplicates stresses the replicate axis on a tiny
// sample.
func BenchmarkSE_ManyReplicates(b *testing.B) {
	benchmarkSE(b, 10, 100000)
}
