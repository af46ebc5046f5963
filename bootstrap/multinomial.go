// SPDX-License-Identifier: MIT

package bootstrap

import "math/rand"

// resampleCounts draws the resample frequency matrix: nReps independent
// multinomial draws with n trials over n equally likely categories.
//
// Row r holds, for each original observation i, how many times i appears
// in virtual resample r; every row sums to n.  A uniform multinomial
// draw is exactly n iid uniform category picks counted into bins, so the
// inner loop is n calls to rng.Intn(n) — no index lists are materialized.
//
// Rows are drawn in order r=0..nReps-1 and trials in order t=0..n-1 from
// the caller-owned rng, which fixes the consumed random sequence and
// makes the matrix reproducible for a given seed.
//
// Entries are stored as float64 so rows feed floats.Dot directly.
func resampleCounts(rng *rand.Rand, nReps, n int) [][]float64 {
	counts := make([][]float64, nReps)
	for r := 0; r < nReps; r++ {
		row := make([]float64, n)
		for t := 0; t < n; t++ {
			row[rng.Intn(n)]++
		}
		counts[r] = row
	}

	return counts
}
