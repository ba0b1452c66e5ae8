package simulate_test

import (
	"fmt"

	"github.com/statforge/mixedsim/randgen"
	"github.com/statforge/mixedsim/simulate"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRandomEffect
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A growth model with 4 subjects of 6 measurements each: correlated
//	random intercept and slope per subject, plus a cross-classified
//	neighborhood intercept. One call produces the random-effect portion
//	of the dataset; fixed effects, error term and outcome are later
//	pipeline stages.
//
// ExampleRandomEffect reports the resulting shape and column layout.
func ExampleRandomEffect() {
	specs := []simulate.GroupSpec{
		{Spec: randgen.Spec{Variances: []float64{0.5, 0.1}, Correlations: []float64{-0.3}}},
		{Spec: randgen.Spec{Variances: []float64{0.25}}, CrossClass: true},
	}
	sizes := simulate.SampleSize{Clusters: map[string][]int{"subject": {6, 6, 6, 6}}}

	data, err := simulate.RandomEffect(nil,
		"y ~ time + (1 + time | subject) + (1 | nbhd)",
		specs, sizes, simulate.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("rows=%d\ncolumns=%v\n", data.NumRows(), data.Names())
	// Output:
	// rows=24
	// columns=[subject 1 time 1.nbhd nbhd]
}
