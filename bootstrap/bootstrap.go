package bootstrap

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// SE — bootstrapped standard error of a weighted mean
//
// Description:
//
//	SE estimates the standard error of the weighted mean of x by
//	multinomial bootstrap resampling: it redraws the n observations
//	with replacement NReps times, computes the weighted mean of every
//	redraw, and returns the spread of those means.
//
// Algorithm Outline:
//  1. Validate inputs (see Errors); resolve nil opts to DefaultOptions().
//  2. Seed a private PRNG with opts.Seed.
//  3. Draw an NReps×n frequency matrix F, row r ~ Multinomial(n, 1/n).
//  4. For every resample r compute the weighted mean restricted to
//     present (non-NaN) observations:
//     mean[r] = Σ_i F[r,i]·wts[i]·x[i]  /  Σ_i F[r,i]·wts[i]·present(x[i])
//  5. Return the population (divide-by-n) standard deviation of the
//     NReps resample means.
//
// Missing values:
//
//	NaN entries of x contribute zero to the numerator and are absent
//	from the denominator, so they never corrupt a resample mean.  If a
//	resample's present weighted mass is exactly zero (every drawn copy
//	is missing or zero-weighted), that resample mean is NaN and the
//	returned standard error is NaN — degenerate resamples are not
//	silently dropped.
//
// Determinism:
//
//	The PRNG is constructed inside the call; no package-global state is
//	read or written.  Same seed + same input ⇒ bit-identical result.
//
// Complexity:
//
//	Time O(NReps·n), Memory O(NReps·n).
//
// Errors:
//   - ErrLengthMismatch  — wts supplied with len(wts) != len(x).
//   - ErrNoObservations  — len(x) == 0.
//   - ErrReplicates      — opts.NReps < 1.
func SE(x, wts []float64, opts *Options) (float64, error) {
	if err := validateVector(x, wts); err != nil {
		return 0, err
	}
	o := resolveOptions(opts)
	if o.NReps < 1 {
		return 0, ErrReplicates
	}

	rng := rand.New(rand.NewSource(o.Seed))
	counts := resampleCounts(rng, o.NReps, len(x))

	return stat.PopStdDev(replicateMeans(counts, x, wts), nil), nil
}

// SEColumns computes one bootstrapped standard error per column of x,
// in column order.  Rows are observations, columns are features.
//
// One frequency matrix is drawn per call and shared across columns, so
// every column's estimate is computed over the same virtual resamples —
// the multi-column result is the column-wise analogue of SE, not k
// independent runs.  Weights apply to rows and are shared by all
// columns.  Missing-value and determinism semantics match SE.
//
// Errors: ErrNilInput, ErrLengthMismatch, ErrNoObservations, ErrReplicates.
func SEColumns(x mat.Matrix, wts []float64, opts *Options) ([]float64, error) {
	if x == nil {
		return nil, ErrNilInput
	}
	n, k := x.Dims()
	if wts != nil && len(wts) != n {
		return nil, ErrLengthMismatch
	}
	if n == 0 {
		return nil, ErrNoObservations
	}
	o := resolveOptions(opts)
	if o.NReps < 1 {
		return nil, ErrReplicates
	}

	rng := rand.New(rand.NewSource(o.Seed))
	counts := resampleCounts(rng, o.NReps, n)

	ses := make([]float64, k)
	col := make([]float64, n)
	for c := 0; c < k; c++ { // deterministic column order
		mat.Col(col, c, x)
		ses[c] = stat.PopStdDev(replicateMeans(counts, col, wts), nil)
	}

	return ses, nil
}

// validateVector applies the shared 1D input checks in documented
// priority order: length mismatch before empty input.
func validateVector(x, wts []float64) error {
	if wts != nil && len(wts) != len(x) {
		return ErrLengthMismatch
	}
	if len(x) == 0 {
		return ErrNoObservations
	}

	return nil
}

// replicateMeans computes the weighted mean of every virtual resample
// for one column of observations.
//
// The column is folded into two fixed vectors first:
//
//	num[i] = wts[i]·col[i]      (0 when col[i] is NaN)
//	den[i] = wts[i]             (0 when col[i] is NaN)
//
// so each resample mean is a pair of dot products against its frequency
// row.  A nil wts means equal weighting (all ones).
func replicateMeans(counts [][]float64, col, wts []float64) []float64 {
	n := len(col)
	num := make([]float64, n)
	den := make([]float64, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(col[i]) {
			continue // missing: zero contribution to both sums
		}
		w := 1.0
		if wts != nil {
			w = wts[i]
		}
		num[i] = w * col[i]
		den[i] = w
	}

	means := make([]float64, len(counts))
	for r, row := range counts {
		means[r] = floats.Dot(row, num) / floats.Dot(row, den)
	}

	return means
}
