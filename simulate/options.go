// SPDX-License-Identifier: MIT

// Package simulate: functional configuration for orchestration.
// Mirrors the randgen option surface and forwards to it, so one seed
// governs every draw of a simulation step.
package simulate

import (
	"github.com/rs/zerolog"
	"github.com/statforge/mixedsim/randgen"
	"golang.org/x/exp/rand"
)

// options carries the resolved configuration of one orchestration call.
type options struct {
	src         rand.Source
	rng         *rand.Rand
	logger      zerolog.Logger
	momentDraws int
	varsim      VariableSimulator
}

// Option mutates the internal options state.
type Option func(*options)

// WithSeed selects a deterministic random source from a seed.
// Policy: seed==0 ⇒ randgen.DefaultSeed; otherwise the seed is used verbatim.
// The source is constructed per application, so one Option value reused
// across several calls gives each call a fresh stream.
func WithSeed(seed uint64) Option {
	if seed == 0 {
		seed = randgen.DefaultSeed
	}

	return func(o *options) { o.src = rand.NewSource(seed) }
}

// WithSource supplies an explicit random source (e.g. a replicate-derived
// stream). Panics on nil (programmer error).
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("simulate: WithSource(nil)")
	}

	return func(o *options) { o.src = src }
}

// WithLogger attaches a structured logger, forwarded to generation for
// non-fatal events. Default is a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMomentDraws overrides the empirical moment reference sample size.
// Panics on n ≤ 1 (programmer error).
func WithMomentDraws(n int) Option {
	if n <= 1 {
		panic("simulate: WithMomentDraws requires n > 1")
	}

	return func(o *options) { o.momentDraws = n }
}

// WithVariableSimulator replaces the default continuous variable simulator
// used for structure-free cross-classified draws. Panics on nil.
func WithVariableSimulator(v VariableSimulator) Option {
	if v == nil {
		panic("simulate: WithVariableSimulator(nil)")
	}

	return func(o *options) { o.varsim = v }
}

// gatherOptions applies opts over the documented defaults. All derived
// state (rng, default simulator) hangs off the single resolved source.
func gatherOptions(opts ...Option) options {
	o := options{
		logger:      zerolog.Nop(),
		momentDraws: randgen.DefaultMomentDraws,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rand.NewSource(randgen.DefaultSeed)
	}
	o.rng = rand.New(o.src)

	return o
}

// randgenOptions translates the orchestration options for a Generate call
// on the shared source.
func (o options) randgenOptions() []randgen.Option {
	return []randgen.Option{
		randgen.WithSource(o.src),
		randgen.WithLogger(o.logger),
		randgen.WithMomentDraws(o.momentDraws),
	}
}
