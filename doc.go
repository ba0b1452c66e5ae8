// Package mixedsim generates simulated datasets for multilevel
// (mixed-effects) regression models — from a compact formula string to
// correlated random effects merged into a growing data table.
//
// 🚀 What is mixedsim?
//
//	A deterministic, library-level data-generating engine that brings together:
//		• Formula parsing: y ~ x1 + x2 + (1 + x3 | g1) + (1 | g2)
//		• Cluster bookkeeping: nested and cross-classified grouping structures
//		• Correlated random effects: Cholesky/eigen covariance induction
//		• Dataset assembly: column tables built step by step, one pipeline stage at a time
//		• Replicate drivers: embarrassingly parallel Monte Carlo with independent seeds
//
// ✨ Why choose mixedsim?
//
//   - Deterministic by construction – every draw flows from one seeded source
//   - Structured failures – sentinel errors for every malformed input, no silent misalignment
//   - Numerically forgiving – borderline covariance matrices are spectrum-clipped, not rejected
//   - Extensible – register your own samplers alongside the gonum-backed built-ins
//
// Everything is organized under five subpackages:
//
//	formula/   — mixed-model formula mini-language parser
//	dataset/   — the accumulating simulated data table (Frame)
//	randgen/   — sampler registry + correlated random-effect generation
//	simulate/  — cross-classification resolution and the random-effect orchestrator
//	replicate/ — parallel replicate driver for power-style studies
//
// Quick sketch of one simulation step:
//
//	y ~ time + (1 + time | subject)
//	        │
//	        ▼
//	parse → resolve clusters → draw correlated effects → bind onto the dataset
//
// Dive into the package docs and example tests for full walkthroughs.
//
//	go get github.com/statforge/mixedsim
package mixedsim
