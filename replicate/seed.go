// Package replicate - deterministic seed derivation for parallel streams.
//
// Goals:
//   - Determinism: same base seed ⇒ identical per-replicate streams across
//     platforms and worker counts.
//   - Independence: replicate streams must not be correlated; a SplitMix64
//     avalanche mix eliminates correlations between consecutive indices.
package replicate

// deriveSeed mixes a base seed and a stream identifier into a new 64-bit
// seed.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. They
//     provide strong bit diffusion; small changes in inputs produce large,
//     well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(base uint64, stream uint64) uint64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = base ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = 0x9e3779b97f4a7c15 // a zero seed would collapse to the default stream
	}

	return x
}
