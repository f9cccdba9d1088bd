package chain

import "github.com/katalvlaran/markov/transition"

// Chain is an N-th order Markov chain over typed state labels.
//
// It owns its label list (immutable after construction), a normalized
// transition.Table, the history window of the order+1 most recently
// visited state indices, and its random source. See the package
// documentation for the usage and concurrency contracts.
type Chain[S comparable] struct {
	order  int
	states []S       // immutable labels, index-aligned with the table
	index  map[S]int // label -> state index
	table  *transition.Table
	src    Source
	hist   *window
	start  int   // initial-history state index
	ctx    []int // scratch sampling context, len == order
}

// New builds a chain of the given order from a flat weight slice of
// length len(states)^(order+1), laid out as documented in the
// transition package (oldest conditioning state first, candidate next
// state last). The table is normalized once, here; zero-sum rows keep
// the engine's last-index sampling fallback.
//
// Labels must be pairwise unique. History starts as order+1 copies of
// the start state (Options.Start, default states[0]).
//
// Errors:
//   - ErrNoStates       — empty label list
//   - ErrDuplicateState — repeated label
//   - ErrStartState     — Options.Start outside [0, len(states))
//   - transition.ErrInvalidOrder / ErrInvalidShape / ErrInvalidWeight —
//     propagated from engine construction
//
// Complexity: O(len(weights)) for validation plus normalization.
func New[S comparable](order int, states []S, weights []float64, opts *Options) (*Chain[S], error) {
	tbl, err := transition.New(order, len(states), weights)
	if err != nil {
		return nil, err
	}

	return NewWithTable(states, tbl, opts)
}

// NewWithTable wraps a chain around an existing engine table, which is
// normalized here (idempotently — wrapping an already-normalized table
// is safe). This is the entry point for the read-only sharing pattern:
// several chains over one table, each with its own history and source.
//
// Errors:
//   - ErrNoStates       — empty label list
//   - ErrNilTable       — tbl is nil
//   - ErrStateCount     — len(states) != tbl.States()
//   - ErrDuplicateState — repeated label
//   - ErrStartState     — Options.Start outside [0, len(states))
func NewWithTable[S comparable](states []S, tbl *transition.Table, opts *Options) (*Chain[S], error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}
	if tbl == nil {
		return nil, ErrNilTable
	}
	if tbl.States() != len(states) {
		return nil, ErrStateCount
	}

	index := make(map[S]int, len(states))
	for i, label := range states {
		if _, dup := index[label]; dup {
			return nil, ErrDuplicateState
		}
		index[label] = i
	}

	tbl.Normalize()

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Start < 0 || o.Start >= len(states) {
		return nil, ErrStartState
	}

	labels := make([]S, len(states))
	copy(labels, states)

	order := tbl.Order()

	return &Chain[S]{
		order:  order,
		states: labels,
		index:  index,
		table:  tbl,
		src:    o.resolveSource(),
		hist:   newWindow(order+1, o.Start),
		start:  o.Start,
		ctx:    make([]int, order),
	}, nil
}

// NewFromMatrix builds a first-order chain from a square 2D matrix:
// m[x][y] is the weight of moving to states[y] given current state
// states[x]. Returns ErrMatrixShape unless the matrix is square over
// the state count.
func NewFromMatrix[S comparable](states []S, m [][]float64, opts *Options) (*Chain[S], error) {
	weights, err := flattenSquare(len(states), m)
	if err != nil {
		return nil, err
	}

	return New(1, states, weights, opts)
}

// NewFromCube builds a second-order chain from a cubical 3D matrix:
// m[x][y][z] is the weight of moving to states[z] given current state
// states[y] and previous state states[x]. Returns ErrMatrixShape
// unless the matrix is cubical over the state count.
func NewFromCube[S comparable](states []S, m [][][]float64, opts *Options) (*Chain[S], error) {
	weights, err := flattenCube(len(states), m)
	if err != nil {
		return nil, err
	}

	return New(2, states, weights, opts)
}

// Next advances the chain by one step: it consumes exactly one uniform
// draw from the source, slides the history window (drop oldest, append
// sampled), and returns the newly entered state label.
//
// Next cannot fail after successful construction — the window holds
// only indices the chain produced, so every sampling context is valid
// by construction.
func (c *Chain[S]) Next() S {
	draw := c.src.Float64()

	next, err := c.table.Next(c.hist.latest(c.ctx), draw)
	if err != nil {
		panic(panicHistory)
	}
	c.hist.push(next)

	return c.states[next]
}

// Current returns the most recently visited state. Equivalent to
// PreviousN(0).
func (c *Chain[S]) Current() S {
	return c.states[c.hist.at(0)]
}

// Previous returns the state visited one step before the current one.
// Equivalent to PreviousN(1).
func (c *Chain[S]) Previous() S {
	return c.states[c.hist.at(1)]
}

// PreviousN returns the state visited n steps before the current one;
// n=0 is the current state and n=order the oldest remembered one.
// Returns ErrLookback for n outside [0, order].
func (c *Chain[S]) PreviousN(n int) (S, error) {
	if n < 0 || n > c.order {
		var zero S

		return zero, ErrLookback
	}

	return c.states[c.hist.at(n)], nil
}

// ResetHistory replaces the whole window with order+1 copies of the
// start state, exactly as after construction.
func (c *Chain[S]) ResetHistory() {
	c.hist.reset(c.start)
}

// Index returns the state index for a label and whether the label is
// one of the chain's states.
func (c *Chain[S]) Index(label S) (int, bool) {
	i, ok := c.index[label]

	return i, ok
}

// Order returns k, the number of prior states conditioning each step.
func (c *Chain[S]) Order() int { return c.order }

// States returns a copy of the state labels in index order.
func (c *Chain[S]) States() []S {
	out := make([]S, len(c.states))
	copy(out, c.states)

	return out
}

// Table returns the chain's normalized transition table. The table has
// no mutators, so it may be shared read-only across chains that each
// keep an independent history and source — the intended pattern for
// generating several sequences from one set of probabilities.
func (c *Chain[S]) Table() *transition.Table { return c.table }
