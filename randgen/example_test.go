package randgen_test

import (
	"fmt"

	"github.com/statforge/mixedsim/randgen"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGenerate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A random intercept and random slope per subject, with variances
//	(0.5, 0.1) and an intercept/slope correlation of −0.3: the classic
//	"fast starters flatten out" growth-model structure.
//
// ExampleGenerate draws effects for 200 subjects and reports the shape.
func ExampleGenerate() {
	spec := randgen.Spec{
		Variances:    []float64{0.5, 0.1},
		Correlations: []float64{-0.3},
	}

	res, err := randgen.Generate(spec, 200, randgen.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	rows, cols := res.Effects.Dims()
	fmt.Printf("effects: %dx%d\nclipped: %v\n", rows, cols, res.Clipped)
	// Output:
	// effects: 200x2
	// clipped: false
}
