// SPDX-License-Identifier: MIT

// Package simulate orchestrates one random-effect generation step of a
// multilevel simulation: formula → cluster structure → correlated draws →
// dataset columns.
//
// 🚀 One RandomEffect call walks the full state machine:
//
//  1. Parse the formula into random-effect terms (package formula).
//  2. Resolve cross-classification flags, flattened to one entry per effect.
//  3. Partition terms into standard (nested) and cross-classified groups.
//  4. Resolve cluster sample sizes — synthesized from a SampleSize spec on
//     the first step of a chain, or recovered from the incoming dataset's
//     cluster-id columns on later steps.
//  5. Generate standard effects per term (package randgen), expand each
//     per-cluster draw across its cluster's level-1 rows.
//  6. Generate cross-classified effects: one draw per crossed id, broadcast
//     onto the sample by with-replacement membership sampling.
//  7. Column-bind everything onto the dataset and return it for the next
//     pipeline stage (fixed effects, error term, outcome — all external).
//
// ✨ Contracts worth knowing:
//   - Row order is the alignment contract between pipeline steps: an
//     incoming dataset whose row count disagrees with the resolved sizes
//     fails fast with dataset.ErrRowCountMismatch, and no partial dataset
//     is ever returned.
//   - Generation specs are an ordered slice aligned with the formula's
//     term order (cluster-id variables may repeat across terms, so a map
//     keyed by group name cannot represent them).
//   - Rows of an incoming dataset must be grouped by cluster id (the order
//     the synthesized columns produce); sizes are recovered by run-length.
//   - Determinism: one seed drives parsing-independent draws and
//     membership sampling through a single shared source.
//
// ⚙️ Usage:
//
//	specs := []simulate.GroupSpec{{
//	  Spec: randgen.Spec{Variances: []float64{0.5, 0.1}, Correlations: []float64{-0.3}},
//	}}
//	sizes := simulate.SampleSize{Clusters: map[string][]int{"subject": {10, 10, 10}}}
//	data, err := simulate.RandomEffect(nil, "y ~ time + (1 + time | subject)", specs, sizes,
//	  simulate.WithSeed(42))
package simulate
