// Package bootstrap estimates the sampling variability of weighted means
// by multinomial bootstrap resampling, with optional per-column results
// for matrices and label-preserving results for tables.
//
// 🚀 What is the bootstrap?
//
//	Instead of deriving a closed-form standard error, the bootstrap
//	redraws the observed sample with replacement many times and looks
//	at how the statistic moves across the redraws.  It's widely used in:
//	  • A/B test readouts on weighted traffic
//	  • Survey estimation with unequal inclusion weights
//	  • Model-metric error bars without distributional assumptions
//
// ✨ Key features:
//   - SE / SEColumns / SETable: scalar, per-column and labeled results
//   - weights per observation (omitted ⇒ equal weighting)
//   - NaN entries are treated as missing: excluded from both the
//     weighted numerator and the weighted denominator
//   - one n_reps × n multinomial frequency matrix drawn per call and
//     shared across columns — replicates are inclusion counts, never
//     materialized index lists
//   - CI: percentile confidence interval over the same replicate means
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlstat/bootstrap"
//
//	opts := bootstrap.DefaultOptions() // NReps=10000, Seed=0
//	opts.Seed = 42
//
//	// scalar standard error of a weighted mean
//	se, err := bootstrap.SE(x, wts, &opts)
//
//	// one standard error per matrix column
//	ses, err := bootstrap.SEColumns(m, wts, &opts)
//
// Determinism:
//
//	Each call constructs its own PRNG from Options.Seed and draws the
//	resample frequencies in a fixed order.  The same seed and input
//	produce bit-identical output, and concurrent callers never share
//	generator state.
//
// Performance:
//
//   - Time:   O(n_reps · n) to sample, O(n_reps · (n + k)) to reduce
//   - Memory: O(n_reps · n) for the frequency matrix
//
// See example_test.go for worked examples.
package bootstrap
