// Package transition implements the numeric core of an N-th order
// Markov process: storage, normalization and sampling of transition
// probabilities over integer state indices.
//
// A Table of order k over S states is conceptually a (k+1)-dimensional
// array of non-negative weights. Dimension i (0 = oldest) ranges over
// state indices; the last dimension is the candidate next state. The
// table is physically stored flat, addressed in mixed radix:
//
//	offset(i0,…,ik) = i0·S^k + i1·S^(k-1) + … + i(k-1)·S + ik
//
// which keeps context lookup O(1) and sampling O(S) without nesting
// S^(k+1) slices.
//
// Lifecycle:
//  1. New(order, states, weights) — validate shape and weight values.
//  2. Normalize() — divide each context row by its sum (idempotent);
//     zero-sum rows are left untouched and reported as degenerate.
//  3. Next(context, draw) — inverse-CDF sampling: walk the S weights of
//     the context row accumulating a running sum and return the first
//     candidate whose cumulative weight exceeds draw. When the total
//     never exceeds draw (floating-point rounding, or a degenerate
//     row), the last candidate S-1 is returned as a defined fallback.
//
// The package is deliberately label-free: callers that want typed
// states should use the chain package, which wraps a Table behind a
// bijective label↔index mapping.
//
// Concurrency: a Table has no exported mutators after Normalize, so a
// normalized Table may be shared read-only across any number of
// goroutines or chain instances.
//
// Errors: only the sentinel errors declared in types.go are returned;
// match them with errors.Is. No operation panics on caller input.
package transition
