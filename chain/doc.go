// Package chain exposes N-th order Markov chains over arbitrary typed
// state labels, wrapping the index-only transition engine.
//
// 🚀 What is chain?
//
//	A Chain[S] owns an immutable list of unique state labels, a
//	normalized transition.Table, a sliding history window of the
//	order+1 most recently visited states, and a random source. Each
//	Next call consumes exactly one uniform draw, slides the window by
//	one, and returns the freshly entered state label.
//
// ✨ Key features:
//   - generic labels — any comparable type; duplicates rejected at construction
//   - convenience constructors — flat weights (any order), square 2D
//     matrix (order 1), cubical 3D matrix (order 2)
//   - typed accessors — Current, Previous, PreviousN(n) for 0 ≤ n ≤ order
//   - reproducibility — seed the source explicitly and two chains built
//     from the same inputs emit identical sequences
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/markov/chain"
//
//	opts := chain.DefaultOptions()
//	opts.Seed = 42
//
//	c, err := chain.NewFromMatrix([]string{"sun", "rain"}, [][]float64{
//	  {0.8, 0.2}, // from sun
//	  {0.4, 0.6}, // from rain
//	}, &opts)
//	if err != nil { ... }
//
//	for i := 0; i < 7; i++ {
//	  fmt.Println(c.Next())
//	}
//
// History starts as order+1 copies of the start state (states[0] unless
// Options.Start says otherwise) and always holds exactly order+1 valid
// indices; ResetHistory restores that initial window.
//
// Concurrency: a Chain is single-threaded — it owns its history and
// source exclusively. To generate several independent sequences from
// one table, share the read-only Table() across chains that each have
// their own source.
package chain
