// Package lvlstat is your in-memory toolbox for resampling statistics —
// estimating how much a statistic would wobble if the experiment were
// re-run, without ever re-running it.
//
// 🚀 What is lvlstat?
//
//	A small, deterministic statistics library built around the bootstrap:
//		• Weighted means with missing-value (NaN) exclusion
//		• Bootstrapped standard errors for vectors, matrices and labeled tables
//		• Percentile bootstrap confidence intervals
//		• Multinomial resample-frequency matrices as the shared primitive
//
// ✨ Why choose lvlstat?
//
//   - Reproducible by contract – every call owns its seeded PRNG; same
//     seed + same input ⇒ bit-identical output, safe for concurrent callers
//   - Minimal API, clear naming – one options struct, sentinel errors,
//     errors.Is everywhere
//   - Built on gonum – matrices, reductions and quantiles come from
//     gonum/mat and gonum/stat, not hand-rolled kernels
//
// Everything lives under one subpackage:
//
//	bootstrap/ — resample frequencies, standard errors, confidence intervals
//
// Quick sketch:
//
//	x := []float64{1, 2, 3, 4, 5}
//	opts := bootstrap.DefaultOptions()
//	opts.Seed = 42
//	se, err := bootstrap.SE(x, nil, &opts)
//
// Dive into bootstrap/doc.go for the full contract and worked examples.
//
//	go get github.com/katalvlaran/lvlstat/bootstrap
package lvlstat
