// SPDX-License-Identifier: MIT

// Package simulate: specification types and sentinel errors.
package simulate

import (
	"errors"
	"fmt"

	"github.com/statforge/mixedsim/formula"
	"github.com/statforge/mixedsim/randgen"
)

var (
	// ErrInvalidSampleSize indicates a missing or inconsistent sample-size
	// entry for a cluster variable.
	ErrInvalidSampleSize = errors.New("simulate: invalid sample size spec")

	// ErrNoRandomTerms indicates a formula without any random-effect term.
	// It belongs to the formula.ErrMalformedFormula family.
	ErrNoRandomTerms = fmt.Errorf("%w: at least one random-effect term is required", formula.ErrMalformedFormula)
)

// GroupSpec bundles the generation parameters for one random-effect term.
// Specs are supplied as an ordered slice aligned with the formula's term
// order.
type GroupSpec struct {
	randgen.Spec

	// CrossClass marks the whole term as cross-classified: its grouping
	// structure is not nested in the cluster hierarchy, and its effects are
	// broadcast by with-replacement membership sampling.
	CrossClass bool
}

// Flags is the flattened cross-classification view over all effects.
// Entries align with effects in term order, effect order within term.
type Flags struct {
	// IsCrossClassified has one entry per individual effect.
	IsCrossClassified []bool

	// ClusterIDs repeats each term's cluster-id variable once per effect.
	ClusterIDs []string

	// CrossClassIDs is the subsequence of ClusterIDs selected by
	// IsCrossClassified; it feeds output column naming for
	// cross-classified generation.
	CrossClassIDs []string
}

// SampleSize specifies the clustering structure for the first step of a
// simulation chain: per-cluster level-1 observation counts, keyed by
// cluster-id variable. Cluster j (synthesized id j+1) contributes
// Clusters[g][j] rows.
type SampleSize struct {
	Clusters map[string][]int
}

// sizes returns the entry for cluster variable g.
func (s SampleSize) sizes(g string) ([]int, error) {
	counts, ok := s.Clusters[g]
	if !ok {
		return nil, fmt.Errorf("%w: no entry for cluster variable %q", ErrInvalidSampleSize, g)
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: empty entry for cluster variable %q", ErrInvalidSampleSize, g)
	}
	for j, c := range counts {
		if c < 1 {
			return nil, fmt.Errorf("%w: cluster %d of %q has non-positive size %d", ErrInvalidSampleSize, j+1, g, c)
		}
	}

	return counts, nil
}
