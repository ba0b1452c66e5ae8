// SPDX-License-Identifier: MIT

package randgen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Result is the outcome of one Generate call.
type Result struct {
	// Effects is the n×k matrix of generated values, one row per cluster
	// unit, column order matching Spec.Variances.
	Effects *mat.Dense

	// Moments are the resolved standardization moments.
	Moments Moments

	// Clipped reports whether negative eigenvalues were clipped during
	// covariance induction (non-fatal, see package doc).
	Clipped bool
}

// Generate produces n correlated draws per effect for one random-effect
// group, per the variance/correlation structure in spec.
//
// Errors: ErrInvalidGenerationSpec (missing variances, negative variance,
// unknown generator, degenerate moments), ErrInvalidCorrelationSpec
// (wrong correlation count or out-of-range value).
//
// Complexity: O(n·k + k³) time, O(n·k) space
// (plus O(DefaultMomentDraws) when SimulateMoments is set).
func Generate(spec Spec, n int, opts ...Option) (*Result, error) {
	// Stage 1: validate spec and resolve the sampler (fail fast).
	if n < 1 {
		return nil, fmt.Errorf("%w: n must be positive, got %d", ErrInvalidGenerationSpec, n)
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	s, err := NewSampler(spec.Generator, spec.Params, o.src)
	if err != nil {
		return nil, err
	}

	// Stage 2: resolve standardization moments.
	var m Moments
	if m, err = resolveMoments(spec, s, o.momentDraws); err != nil {
		return nil, err
	}

	// Stage 3: draw the n×k raw matrix, standardized to (0, 1).
	var (
		k   = spec.k()
		raw = mat.NewDense(n, k, nil)
		i   int
		j   int
	)
	for j = 0; j < k; j++ {
		for i = 0; i < n; i++ {
			raw.Set(i, j, (s.Rand()-m.Mean)/m.SD)
		}
	}

	// Stage 4: induce the target variance/correlation structure.
	if spec.Correlations == nil {
		// Cholesky of diag(variances) is diag(sqrt(variances)):
		// independent per-column scaling.
		for j = 0; j < k; j++ {
			sd := math.Sqrt(spec.Variances[j])
			for i = 0; i < n; i++ {
				raw.Set(i, j, raw.At(i, j)*sd)
			}
		}

		return &Result{Effects: raw, Moments: m}, nil
	}

	r, err := CorrelationMatrix(k, spec.Correlations)
	if err != nil {
		return nil, err
	}
	a, clipped, err := clippedTransform(covarianceMatrix(spec.Variances, r), o.logger)
	if err != nil {
		return nil, err
	}

	var out mat.Dense
	out.Mul(raw, a.T())

	return &Result{Effects: &out, Moments: m, Clipped: clipped}, nil
}
