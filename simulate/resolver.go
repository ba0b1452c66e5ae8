// SPDX-License-Identifier: MIT

package simulate

import (
	"fmt"

	"github.com/statforge/mixedsim/formula"
	"github.com/statforge/mixedsim/randgen"
)

// ResolveCrossClassification flattens the per-term CrossClass tags onto
// individual effects: term i with k_i effects contributes k_i repeated
// entries, preserving effect order within the term and term order overall.
// Downstream generators index into this flattened view.
//
// Validation performed here (fail fast, before any generation starts):
//   - len(specs) must equal len(terms);
//   - each term's variance count must equal its effect count.
//
// Complexity: O(total effect count).
func ResolveCrossClassification(specs []GroupSpec, terms []formula.TermSpec) (Flags, error) {
	if len(specs) != len(terms) {
		return Flags{}, fmt.Errorf("%w: %d specs for %d random-effect terms",
			randgen.ErrInvalidGenerationSpec, len(specs), len(terms))
	}

	var f Flags
	for i, term := range terms {
		if len(specs[i].Variances) != len(term.Effects) {
			return Flags{}, fmt.Errorf("%w: term %q has %d effects but %d variances",
				randgen.ErrInvalidGenerationSpec, term.ClusterID, len(term.Effects), len(specs[i].Variances))
		}
		for range term.Effects {
			f.IsCrossClassified = append(f.IsCrossClassified, specs[i].CrossClass)
			f.ClusterIDs = append(f.ClusterIDs, term.ClusterID)
			if specs[i].CrossClass {
				f.CrossClassIDs = append(f.CrossClassIDs, term.ClusterID)
			}
		}
	}

	return f, nil
}
