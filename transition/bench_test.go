package transition_test

import (
	"testing"

	"github.com/katalvlaran/markov/transition"
)

// benchmarkNext samples repeatedly from a uniform table of the given
// order and alphabet size, cycling deterministic draws.
func benchmarkNext(b *testing.B, order, states int) {
	size := 1
	for i := 0; i < order+1; i++ {
		size *= states
	}
	weights := make([]float64, size)
	for i := range weights {
		weights[i] = 1
	}
	tbl, err := transition.New(order, states, weights)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	tbl.Normalize()

	context := make([]int, order)
	draws := []float64{0.01, 0.37, 0.62, 0.99}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next, nerr := tbl.Next(context, draws[i%len(draws)])
		if nerr != nil {
			b.Fatalf("Next failed: %v", nerr)
		}
		context[order-1] = next // keep the context moving
	}
}

// BenchmarkNext_Order1Small benchmarks order-1 sampling over 8 states.
func BenchmarkNext_Order1Small(b *testing.B) { benchmarkNext(b, 1, 8) }

// BenchmarkNext_Order1Large benchmarks order-1 sampling over 256 states.
func BenchmarkNext_Order1Large(b *testing.B) { benchmarkNext(b, 1, 256) }

// BenchmarkNext_Order2 benchmarks order-2 sampling over 32 states.
func BenchmarkNext_Order2(b *testing.B) { benchmarkNext(b, 2, 32) }

// BenchmarkNext_Order4 benchmarks order-4 sampling over 8 states.
func BenchmarkNext_Order4(b *testing.B) { benchmarkNext(b, 4, 8) }

// BenchmarkNormalize benchmarks full-table normalization, order 2 over
// 64 states (262144 weights).
func BenchmarkNormalize(b *testing.B) {
	weights := make([]float64, 64*64*64)
	for i := range weights {
		weights[i] = float64(i%7 + 1)
	}
	tbl, err := transition.New(2, 64, weights)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tbl.Normalize()
	}
}
