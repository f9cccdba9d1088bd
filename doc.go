// Package markov is a compact toolkit for discrete, finite-state,
// N-th order Markov processes — weighted random sequence generation
// driven by a learned or hand-written transition probability table.
//
// 🚀 What is markov?
//
//	A deterministic-friendly library that splits the problem into two
//	small layers:
//		• transition/ — the numeric engine: a flattened S^(k+1) weight
//		  table with mixed-radix addressing, per-context normalization
//		  and inverse-CDF sampling over integer state indices
//		• chain/      — the typed wrapper: generic state labels, a
//		  sliding history window of the order+1 most recent states,
//		  and an injected random source
//
// ✨ Why choose markov?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – seeded sources yield identical sequences, always
//   - Pure Go – no cgo, no hidden deps
//   - Shareable – one normalized table can drive many independent chains
//
// Quick sketch (order 1, two states):
//
//	    A ──1.0──▶ B
//	    ▲          │
//	    └───1.0────┘
//
//	alternates A,B,A,B,… forever, for any seed.
//
// Dive into the transition/ and chain/ package docs for contracts, and
// the examples/ directory for runnable scenarios.
//
//	go get github.com/katalvlaran/markov
package markov
