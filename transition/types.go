// Package transition core types and sentinel errors.
package transition

import "errors"

// Sentinel errors for table construction and sampling.
var (
	// ErrInvalidOrder indicates an order below 1.
	ErrInvalidOrder = errors.New("transition: order must be >= 1")
	// ErrNoStates indicates a state count below 1.
	ErrNoStates = errors.New("transition: state count must be >= 1")
	// ErrInvalidShape indicates a weight slice whose length differs from states^(order+1).
	ErrInvalidShape = errors.New("transition: weight count must equal states^(order+1)")
	// ErrInvalidWeight indicates a negative, NaN or infinite weight entry.
	ErrInvalidWeight = errors.New("transition: weights must be finite and non-negative")
	// ErrContextLength indicates a sampling context whose length differs from the order.
	ErrContextLength = errors.New("transition: context length must equal order")
	// ErrIndexOutOfRange indicates a state index outside [0, states).
	ErrIndexOutOfRange = errors.New("transition: state index out of range")
)

// NormEpsilon is the guaranteed tolerance of Normalize: after it runs,
// every non-degenerate context row sums to 1 within NormEpsilon. The
// guarantee also makes Normalize idempotent — renormalizing divides
// each row by a value this close to 1.
const NormEpsilon = 1e-6
