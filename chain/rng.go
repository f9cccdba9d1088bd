// Package chain - random source capability and seeding policy.
//
// This file centralizes how chains obtain uniform draws.
//
// Goals:
//   - Injection: the chain never reaches for a hidden global source;
//     callers may supply any Source (Options.Source).
//   - Determinism on demand: a non-zero Options.Seed yields identical
//     sequences across runs and platforms.
//   - Faithful unseeded mode: Seed==0 means "system-chosen seed"
//     (time-based), matching the behavior of an unseeded constructor.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a Source
//     across chains that run concurrently; give each chain its own.
package chain

import (
	"math/rand"
	"time"
)

// Source produces uniformly distributed draws in [0,1). *math/rand.Rand
// satisfies it; tests may inject a scripted stub.
type Source interface {
	Float64() float64
}

// sourceFromSeed returns a deterministic *rand.Rand for a non-zero
// seed. Seed 0 selects a system-chosen (time-based) seed — the
// documented "unseeded" mode; use a fixed non-zero seed for
// reproducible sequences.
//
// Complexity: O(1).
func sourceFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}
