package bootstrap

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Interval holds a percentile bootstrap confidence interval for a
// weighted mean, together with the mean and sample standard deviation
// of the bootstrap replicate means it was cut from.
type Interval struct {
	Lower  float64 // lower percentile bound
	Upper  float64 // upper percentile bound
	Mean   float64 // mean of the replicate means
	StdDev float64 // sample standard deviation of the replicate means
	Level  float64 // confidence level, e.g. 0.95
}

// CI computes a percentile bootstrap confidence interval for the
// weighted mean of x at the given confidence level.
//
// The replicate means are drawn exactly as in SE (same frequency-matrix
// construction, same missing-value semantics), then sorted; the bounds
// are the tail/2 and 1-tail/2 empirical quantiles with linear
// interpolation.  For a fixed seed, CI and SE consume identical random
// sequences, so Interval.StdDev relates to SE's result by the
// sample-vs-population convention alone.
//
// Errors: ErrLengthMismatch, ErrNoObservations, ErrReplicates, and
// ErrConfidenceLevel when level is outside (0, 1).
func CI(x, wts []float64, level float64, opts *Options) (Interval, error) {
	if err := validateVector(x, wts); err != nil {
		return Interval{}, err
	}
	o := resolveOptions(opts)
	if o.NReps < 1 {
		return Interval{}, ErrReplicates
	}
	if level <= 0 || level >= 1 {
		return Interval{}, ErrConfidenceLevel
	}

	rng := rand.New(rand.NewSource(o.Seed))
	means := replicateMeans(resampleCounts(rng, o.NReps, len(x)), x, wts)
	sort.Float64s(means)

	m, sd := stat.MeanStdDev(means, nil)
	tail := 1 - level

	return Interval{
		Lower:  stat.Quantile(tail/2, stat.LinInterp, means, nil),
		Upper:  stat.Quantile(1-tail/2, stat.LinInterp, means, nil),
		Mean:   m,
		StdDev: sd,
		Level:  level,
	}, nil
}
