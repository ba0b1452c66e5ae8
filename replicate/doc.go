// Package replicate runs many independent full-dataset draws in parallel
// for Monte Carlo (power-style) studies.
//
// The natural concurrency unit is one whole replicate: the generation
// pipeline has sequential data dependencies internally (parse → resolve →
// generate → merge), but replicates share no state at all. Run therefore
// launches one worker per replicate (bounded by WithWorkers), gives each a
// deterministic random source derived from the base seed and the replicate
// index via a SplitMix64 mix, and returns the frames in replicate order.
//
// ⚙️ Usage:
//
//	frames, err := replicate.Run(ctx, 500, func(rep int, src rand.Source) (*dataset.Frame, error) {
//	  return simulate.RandomEffect(nil, form, specs, sizes, simulate.WithSource(src))
//	}, replicate.WithSeed(42), replicate.WithWorkers(8))
//
// Determinism: the same base seed yields the same per-replicate streams
// regardless of worker count or scheduling, because each stream depends
// only on (seed, replicate index). Cancellation is honored at replicate
// granularity through the context.
package replicate
