// Package bootstrap: options with documented defaults.
package bootstrap

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultNReps is the number of bootstrap resamples drawn when the
	// caller does not override Options.NReps.
	DefaultNReps = 10000

	// DefaultSeed seeds the per-call PRNG when the caller does not
	// override Options.Seed.
	DefaultSeed int64 = 0
)

// Options configures a bootstrap estimate.
//
// Fields:
//   - NReps — count of bootstrap resamples; must be ≥ 1.
//   - Seed  — seed for the per-call PRNG.  The same seed and input
//     produce bit-identical output.
//
// A nil *Options passed to any entry point is equivalent to
// DefaultOptions().  An explicit Options with NReps < 1 is rejected
// with ErrReplicates; the zero value is NOT silently promoted to the
// default, so "0 replicates" fails loudly rather than surprising the
// caller with 10000 draws.
type Options struct {
	NReps int
	Seed  int64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{NReps: DefaultNReps, Seed: DefaultSeed}
}

// resolveOptions maps a nil *Options onto the defaults; non-nil options
// are used verbatim so that invalid values surface as errors.
func resolveOptions(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}
