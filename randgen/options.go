// SPDX-License-Identifier: MIT

// Package randgen: functional configuration for generation.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: option fields are unexported; public APIs consume ...Option.
package randgen

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultGenerator is the sampler used when Spec.Generator is empty.
	DefaultGenerator = "normal"

	// DefaultMomentDraws is the reference sample size for empirical moment
	// estimation under Spec.SimulateMoments.
	DefaultMomentDraws = 1_000_000

	// DefaultSeed is the fixed "zero" seed used when callers pass seed==0.
	// The value is arbitrary but stable to keep reproducible defaults.
	DefaultSeed uint64 = 1
)

// options carries the resolved configuration of one Generate call.
type options struct {
	src         rand.Source
	logger      zerolog.Logger
	momentDraws int
}

// Option mutates the internal options state.
type Option func(*options)

// WithSeed selects a deterministic random source from a seed.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
// The source is constructed per application, so one Option value reused
// across several calls gives each call a fresh stream.
func WithSeed(seed uint64) Option {
	if seed == 0 {
		seed = DefaultSeed
	}

	return func(o *options) { o.src = rand.NewSource(seed) }
}

// WithSource supplies an explicit random source, typically shared with an
// enclosing orchestrator so one seed governs a whole simulation step.
// Panics on nil (programmer error).
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("randgen: WithSource(nil)")
	}

	return func(o *options) { o.src = src }
}

// WithLogger attaches a structured logger for non-fatal events
// (eigenvalue clipping). Default is a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMomentDraws overrides the empirical reference sample size.
// Panics on n ≤ 1 (programmer error).
func WithMomentDraws(n int) Option {
	if n <= 1 {
		panic("randgen: WithMomentDraws requires n > 1")
	}

	return func(o *options) { o.momentDraws = n }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		logger:      zerolog.Nop(),
		momentDraws: DefaultMomentDraws,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rand.NewSource(DefaultSeed)
	}

	return o
}
