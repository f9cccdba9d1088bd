// Package chain core sentinel errors.
package chain

import "errors"

// Sentinel errors for chain construction and history access.
var (
	// ErrNoStates indicates an empty state label list.
	ErrNoStates = errors.New("chain: at least one state label is required")
	// ErrDuplicateState indicates the state labels are not pairwise unique.
	ErrDuplicateState = errors.New("chain: state labels must be unique")
	// ErrStartState indicates Options.Start is outside [0, len(states)).
	ErrStartState = errors.New("chain: start state index out of range")
	// ErrLookback indicates a PreviousN argument outside [0, order].
	ErrLookback = errors.New("chain: lookback must be within [0, order]")
	// ErrMatrixShape indicates a 2D matrix that is not square over the
	// state count, or a 3D matrix that is not cubical over it.
	ErrMatrixShape = errors.New("chain: matrix dimensions must equal the state count")
	// ErrNilTable indicates a nil table passed to NewWithTable.
	ErrNilTable = errors.New("chain: table must not be nil")
	// ErrStateCount indicates a label list whose length differs from the
	// table's state count.
	ErrStateCount = errors.New("chain: state label count must equal table state count")
)

// panicHistory is the message used when the engine rejects a context
// built from the history window. The window holds only indices the
// chain itself produced, so this is unreachable short of memory
// corruption or an internal bug.
const panicHistory = "chain: history window produced an invalid sampling context"
