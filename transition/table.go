package transition

import "math"

// Table stores the transition weights of an order-k Markov process over
// S states as a flat mixed-radix array of length S^(k+1).
//
// A Table is mutable only through Normalize (idempotent); all other
// methods are read-only. See the package documentation for the layout
// and the sharing contract.
type Table struct {
	order      int       // k; number of conditioning states
	states     int       // S; size of the state alphabet
	weights    []float64 // flat weights, len == S^(k+1), owned copy
	degenerate int       // zero-sum rows found by the last Normalize
}

// New builds a Table of the given order over the given number of
// states from a flat weight slice of length states^(order+1).
// The slice is copied; the caller keeps ownership of its argument.
//
// Errors:
//   - ErrInvalidOrder  — order < 1
//   - ErrNoStates      — states < 1
//   - ErrInvalidShape  — len(weights) != states^(order+1)
//   - ErrInvalidWeight — any entry is negative, NaN or ±Inf
//
// Complexity: O(len(weights)) time and space.
func New(order, states int, weights []float64) (*Table, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if states < 1 {
		return nil, ErrNoStates
	}

	want, ok := powChecked(states, order+1)
	if !ok || len(weights) != want {
		return nil, ErrInvalidShape
	}

	var w float64
	for _, w = range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, ErrInvalidWeight
		}
	}

	t := &Table{
		order:   order,
		states:  states,
		weights: make([]float64, len(weights)),
	}
	copy(t.weights, weights)

	return t, nil
}

// Order returns k, the number of conditioning states.
func (t *Table) Order() int { return t.order }

// States returns S, the size of the state alphabet.
func (t *Table) States() int { return t.states }

// Len returns the number of stored weights, S^(k+1).
func (t *Table) Len() int { return len(t.weights) }

// Degenerate returns the number of zero-sum context rows found by the
// most recent Normalize call (0 before the first call).
func (t *Table) Degenerate() int { return t.degenerate }

// Normalize rescales every context row so its S weights sum to 1.
// Rows whose raw weights sum to zero carry no distribution; they are
// left untouched and counted as degenerate — sampling such a row falls
// back to the last candidate index (see Next). Returns the degenerate
// row count.
//
// Normalize is idempotent: rows already summing to 1 are divided by a
// value within NormEpsilon of 1, a no-op within float tolerance.
//
// Complexity: O(S^(k+1)) time, O(1) space.
func (t *Table) Normalize() int {
	var (
		base int
		i    int
		sum  float64
	)
	t.degenerate = 0
	for base = 0; base < len(t.weights); base += t.states {
		sum = 0
		for i = 0; i < t.states; i++ {
			sum += t.weights[base+i]
		}
		if sum == 0 {
			t.degenerate++
			continue
		}
		for i = 0; i < t.states; i++ {
			t.weights[base+i] /= sum
		}
	}

	return t.degenerate
}

// Next samples a next-state index for the given context and a uniform
// draw in [0,1): it walks the S weights of the context row accumulating
// a running sum and returns the first candidate whose cumulative weight
// strictly exceeds draw. Strict inequality keeps zero-weight candidates
// unreachable for every draw, including exactly 0.
//
// If the cumulative total never exceeds draw — possible only through
// floating-point rounding or a degenerate zero-sum row — the last
// candidate index S-1 is returned as a defined fallback, not an error.
//
// Errors:
//   - ErrContextLength   — len(context) != Order()
//   - ErrIndexOutOfRange — a context entry outside [0, States())
//
// Complexity: O(k) offset + O(S) walk per call.
func (t *Table) Next(context []int, draw float64) (int, error) {
	base, err := t.offset(context)
	if err != nil {
		return 0, err
	}

	var (
		i   int
		cum float64
	)
	for i = 0; i < t.states; i++ {
		cum += t.weights[base+i]
		if cum > draw {
			return i, nil
		}
	}

	// Rounding shortfall or degenerate row: defined fallback.
	return t.states - 1, nil
}

// Probability returns the stored weight for a full (k+1)-length window
// of state indices, oldest first, candidate next state last. After
// Normalize it is the conditional probability of the transition.
//
// Errors:
//   - ErrContextLength   — len(window) != Order()+1
//   - ErrIndexOutOfRange — any index outside [0, States())
func (t *Table) Probability(window ...int) (float64, error) {
	if len(window) != t.order+1 {
		return 0, ErrContextLength
	}
	base, err := t.offset(window[:t.order])
	if err != nil {
		return 0, err
	}
	last := window[t.order]
	if last < 0 || last >= t.states {
		return 0, ErrIndexOutOfRange
	}

	return t.weights[base+last], nil
}

// offset computes the base offset of a context row: the mixed-radix
// value of the k context indices, scaled by S for the next-state axis.
func (t *Table) offset(context []int) (int, error) {
	if len(context) != t.order {
		return 0, ErrContextLength
	}

	var (
		base int
		idx  int
	)
	for _, idx = range context {
		if idx < 0 || idx >= t.states {
			return 0, ErrIndexOutOfRange
		}
		base = base*t.states + idx
	}

	return base * t.states, nil
}

// powChecked computes base^exp for non-negative exp, reporting overflow
// instead of wrapping. Used to validate the declared table shape.
func powChecked(base, exp int) (int, bool) {
	result := 1
	for i := 0; i < exp; i++ {
		if base != 0 && result > math.MaxInt/base {
			return 0, false
		}
		result *= base
	}

	return result, true
}
