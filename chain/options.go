package chain

// DefaultStart is the index of the state used to fill the initial
// history window: every chain starts as if it had just visited
// states[DefaultStart] order+1 times in a row.
const DefaultStart = 0

// Options configures chain construction. Pass nil to any constructor
// to use DefaultOptions.
//
// Fields:
//   - Seed   — seed for the chain's own random source. 0 means
//     system-chosen (time-based); any other value gives reproducible
//     sequences. Ignored when Source is non-nil.
//   - Source — an injected random source; overrides Seed entirely.
//     The chain takes exclusive ownership for its lifetime.
//   - Start  — index of the initial-history state, default DefaultStart.
//     Must be within [0, len(states)).
//
// Example:
//
//	opts := chain.DefaultOptions()
//	opts.Seed = 1337              // reproducible run
//	opts.Start = 2                // begin from states[2]
//	c, err := chain.New(1, states, weights, &opts)
type Options struct {
	Seed   int64
	Source Source
	Start  int
}

// DefaultOptions returns the documented defaults: system-chosen seed,
// no injected source, start state DefaultStart.
func DefaultOptions() Options {
	return Options{
		Seed:   0,
		Source: nil,
		Start:  DefaultStart,
	}
}

// resolveSource picks the effective random source: an injected Source
// wins, otherwise the seed policy of sourceFromSeed applies.
func (o *Options) resolveSource() Source {
	if o.Source != nil {
		return o.Source
	}

	return sourceFromSeed(o.Seed)
}
