// SPDX-License-Identifier: MIT

// Package randgen: correlation/covariance construction and the spectral
// transform that realizes a target covariance on standardized draws.
package randgen

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

// validateUpper checks that upper has length k·(k−1)/2 and every value
// lies in [−1, 1].
func validateUpper(k int, upper []float64) error {
	want := k * (k - 1) / 2
	if len(upper) != want {
		return fmt.Errorf("%w: %d correlations for %d effects, want %d",
			ErrInvalidCorrelationSpec, len(upper), k, want)
	}
	for i, r := range upper {
		if math.IsNaN(r) || r < -1 || r > 1 {
			return fmt.Errorf("%w: correlation %v at position %d outside [-1,1]",
				ErrInvalidCorrelationSpec, r, i)
		}
	}

	return nil
}

// CorrelationMatrix builds the symmetric k×k correlation matrix from its
// upper-triangular list, ordered row by row:
// (1,2), (1,3), ..., (1,k), (2,3), ..., (k−1,k).
// The diagonal is unit. Returns ErrInvalidCorrelationSpec on a length
// mismatch or a value outside [−1, 1].
//
// Complexity: O(k²).
func CorrelationMatrix(k int, upper []float64) (*mat.SymDense, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", ErrInvalidCorrelationSpec, k)
	}
	if err := validateUpper(k, upper); err != nil {
		return nil, err
	}

	var (
		r    = mat.NewSymDense(k, nil)
		next int
		i, j int
	)
	for i = 0; i < k; i++ {
		r.SetSym(i, i, 1)
		for j = i + 1; j < k; j++ {
			r.SetSym(i, j, upper[next])
			next++
		}
	}

	return r, nil
}

// covarianceMatrix forms Σ = D·R·D with D = diag(sqrt(variances)).
//
// Complexity: O(k²).
func covarianceMatrix(variances []float64, r *mat.SymDense) *mat.SymDense {
	var (
		k     = len(variances)
		sigma = mat.NewSymDense(k, nil)
		sd    = make([]float64, k)
	)
	for i := range variances {
		sd[i] = math.Sqrt(variances[i])
	}
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			sigma.SetSym(i, j, sd[i]*sd[j]*r.At(i, j))
		}
	}

	return sigma
}

// clippedTransform eigendecomposes Σ, clips negative eigenvalues to zero,
// and returns A = Q·Λ^½ so that X = Z·Aᵀ carries covariance Q·Λ·Qᵀ.
// Clipping is reported through the returned flag and a warning on log;
// generation never fails on a numerically non-PSD Σ.
//
// Complexity: O(k³).
func clippedTransform(sigma *mat.SymDense, log zerolog.Logger) (*mat.Dense, bool, error) {
	// Stage 1: symmetric eigendecomposition.
	var es mat.EigenSym
	if ok := es.Factorize(sigma, true); !ok {
		return nil, false, fmt.Errorf("%w: eigendecomposition failed", ErrInvalidCorrelationSpec)
	}

	// Stage 2: clip the spectrum.
	var (
		vals    = es.Values(nil)
		k       = len(vals)
		clipped int
	)
	for i, v := range vals {
		if v < 0 {
			vals[i] = 0
			clipped++
		}
		vals[i] = math.Sqrt(vals[i])
	}
	if clipped > 0 {
		log.Warn().
			Int("clipped_eigenvalues", clipped).
			Int("rank", k-clipped).
			Msg("covariance matrix is not positive semidefinite; negative eigenvalues clipped to zero")
	}

	// Stage 3: A = Q·Λ^½ (column j of Q scaled by sqrt(λ_j)).
	var q, a mat.Dense
	es.VectorsTo(&q)
	a.Mul(&q, mat.NewDiagDense(k, vals))

	return &a, clipped > 0, nil
}
