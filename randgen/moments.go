// SPDX-License-Identifier: MIT

package randgen

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// defaultMoments are the standardization moments when the caller supplies
// neither theoretical values nor SimulateMoments.
var defaultMoments = Moments{Mean: 0, SD: 1}

// resolveMoments determines the (mean, sd) standardization pair for a spec.
//
// SimulateMoments=true draws a large reference sample from s and estimates
// both moments empirically; otherwise Spec.Moments (or (0,1)) is used.
// A resolved sd ≤ 0 is rejected: standardization would divide by zero.
//
// Complexity: O(draws) time, O(draws) space on the empirical path; O(1)
// otherwise.
func resolveMoments(spec Spec, s Sampler, draws int) (Moments, error) {
	var m Moments
	switch {
	case spec.SimulateMoments:
		x := make([]float64, draws)
		for i := range x {
			x[i] = s.Rand()
		}
		m = Moments{Mean: stat.Mean(x, nil), SD: stat.StdDev(x, nil)}
	case spec.Moments != nil:
		m = *spec.Moments
	default:
		m = defaultMoments
	}

	if m.SD <= 0 {
		return Moments{}, fmt.Errorf("%w: resolved sd %v is not positive", ErrInvalidGenerationSpec, m.SD)
	}

	return m, nil
}
