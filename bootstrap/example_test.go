package bootstrap_test

import (
	"fmt"

	"github.com/katalvlaran/lvlstat/bootstrap"
	"gonum.org/v1/gonum/mat"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSE
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Estimate the standard error of the mean of a small sample.
//	  x = [1, 2, 3, 4, 5]
//
// Options:
//   - NReps = 5000 (replicates)
//   - Seed  = 42   (reproducible)
//
// The estimate is seed-dependent but always positive and bounded above
// by the sample standard deviation (~1.58 here).
func ExampleSE() {
	x := []float64{1, 2, 3, 4, 5}
	opts := bootstrap.DefaultOptions()
	opts.NReps = 5000
	opts.Seed = 42

	se, err := bootstrap.SE(x, nil, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("0 < se < 1.59: %v\n", se > 0 && se < 1.59)
	// Output:
	// 0 < se < 1.59: true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSE_lengthMismatch
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Weights must align one-to-one with observations; mismatched lengths
//	fail before any resampling happens.
func ExampleSE_lengthMismatch() {
	_, err := bootstrap.SE([]float64{1, 2, 3}, []float64{1, 2}, nil)
	fmt.Println(err)
	// Output:
	// bootstrap: x and wts must have the same length
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSETable
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Labeled input yields a labeled result: the Series carries the
//	table's column labels in the same order.
func ExampleSETable() {
	data := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})
	tbl, err := bootstrap.NewTable([]string{"height", "weight"}, data)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	opts := bootstrap.Options{NReps: 2000, Seed: 0}
	series, err := bootstrap.SETable(tbl, nil, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("labels=%v len=%d\n", series.Labels(), series.Len())
	// Output:
	// labels=[height weight] len=2
}
