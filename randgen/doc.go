// SPDX-License-Identifier: MIT

// Package randgen generates correlated random effects for multilevel
// simulation: one draw per cluster unit for each effect, correlated and
// scaled exactly as the caller's variance/correlation specification asks.
//
// 🚀 Pipeline of one Generate call:
//
//  1. Resolve standardization moments — theoretical (mean, sd), defaulting
//     to (0, 1), or empirical from a large reference draw when
//     Spec.SimulateMoments is set.
//  2. Draw an n×k matrix from the named sampler and standardize each value
//     against the resolved moments.
//  3. Induce the target structure:
//     • no correlations — scale column j by sqrt(variances[j]), the
//     Cholesky factor of diag(variances);
//     • correlations — build R from the upper-triangular list, form
//     Σ = D·R·D with D = diag(sqrt(variances)), eigendecompose, clip
//     negative eigenvalues to zero, and push the standardized draw
//     through Q·Λ^½.
//
// The spectral route tolerates mildly non-positive-semidefinite user input:
// clipping is logged as a warning (zerolog) and flagged on the Result, never
// an error.
//
// ✨ Samplers:
//
//	Distributions are resolved by name through a registry backed by
//	gonum/stat/distuv (normal, uniform, exponential, gamma, beta, laplace,
//	studentst, chisquared). Register adds custom samplers. Resolution
//	happens once, at validation time; an unknown name fails fast with
//	ErrUnknownGenerator.
//
// ⚙️ Usage:
//
//	spec := randgen.Spec{
//	  Variances:    []float64{1, 1},
//	  Correlations: []float64{0.5},
//	}
//	res, err := randgen.Generate(spec, 10_000, randgen.WithSeed(42))
//	// res.Effects is a 10000×2 *mat.Dense with cov ≈ [[1 .5] [.5 1]]
//
// Determinism: same seed ⇒ identical output. All randomness flows through
// a single golang.org/x/exp/rand source supplied by the options.
package randgen
