// SPDX-License-Identifier: MIT

package simulate

import (
	"fmt"

	"github.com/statforge/mixedsim/dataset"
	"github.com/statforge/mixedsim/formula"
	"github.com/statforge/mixedsim/randgen"
)

// RandomEffect runs one random-effect generation step: it parses the
// formula, resolves the clustering structure, generates standard and
// cross-classified effects, and column-binds everything onto the dataset.
//
// data is nil on the first step of a simulation chain; fresh cluster-id
// columns are then synthesized from sizes. On later steps the incoming
// dataset's row count and id columns define the structure, and any
// disagreement with sizes fails fast with dataset.ErrRowCountMismatch.
// The incoming Frame is mutated in place and returned; on error no
// partial dataset escapes, so malformed structure never leaks into the
// fixed-effect or error-term stages.
//
// specs is ordered, aligned with the formula's random-term order. Effect
// columns take their effect's name; when that name is already taken the
// column falls back to "effect.cluster", then "effect.cluster.2" and so
// on, so repeated terms on one cluster always bind.
//
// Errors: formula.ErrMalformedFormula / ErrMalformedTerm,
// randgen.ErrInvalidGenerationSpec / ErrInvalidCorrelationSpec,
// ErrInvalidSampleSize, dataset.ErrRowCountMismatch.
func RandomEffect(data *dataset.Frame, raw string, specs []GroupSpec, sizes SampleSize, opts ...Option) (*dataset.Frame, error) {
	// Stage 1: parse the formula into random-effect terms.
	fs, err := formula.Parse(raw)
	if err != nil {
		return nil, err
	}
	if len(fs.RandomTerms) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoRandomTerms, raw)
	}
	terms := make([]formula.TermSpec, len(fs.RandomTerms))
	for i, t := range fs.RandomTerms {
		if terms[i], err = formula.ParseTerm(t); err != nil {
			return nil, err
		}
	}

	// Stage 2: flatten cross-classification flags (validates spec/term
	// alignment and per-term variance counts).
	fl, err := ResolveCrossClassification(specs, terms)
	if err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)

	// Stage 3: resolve per-cluster sizes for every standard grouping
	// variable, first occurrence in the flattened flag order (which
	// preserves term order).
	var (
		sizesByVar = make(map[string][]int)
		varOrder   []string
	)
	for j, g := range fl.ClusterIDs {
		if fl.IsCrossClassified[j] {
			continue
		}
		if _, ok := sizesByVar[g]; ok {
			continue
		}
		s, err := resolveSizes(data, g, sizes)
		if err != nil {
			return nil, err
		}
		sizesByVar[g] = s
		varOrder = append(varOrder, g)
	}

	// Stage 4: determine the level-1 sample size n.
	n, err := resolveN(data, terms, specs, sizesByVar, varOrder, sizes)
	if err != nil {
		return nil, err
	}

	// Stage 5: stage all generated columns separately; the incoming frame
	// is touched only after every generation step has succeeded, so no
	// partial dataset ever escapes. Fresh chains get synthesized id
	// columns first.
	staged := dataset.New()
	if data == nil {
		for _, g := range varOrder {
			if err = staged.AddColumn(g, idColumn(sizesByVar[g])); err != nil {
				return nil, err
			}
		}
	}

	// Stage 6: standard (nested) terms — per-cluster draws expanded onto
	// level-1 rows.
	for i, term := range terms {
		if specs[i].CrossClass {
			continue
		}
		s := sizesByVar[term.ClusterID]
		res, err := randgen.Generate(specs[i].Spec, len(s), o.randgenOptions()...)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(term.Effects))
		for _, eff := range term.Effects {
			names = append(names, effectColumnName(data, staged, names, eff, term.ClusterID))
		}
		perCluster, err := dataset.FromMatrix(res.Effects, names)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			vals, err := perCluster.Column(name)
			if err != nil {
				return nil, err
			}
			if err = staged.AddColumn(name, expandBySizes(vals, s)); err != nil {
				return nil, err
			}
		}
	}

	// Stage 7: cross-classified terms — id population is the level-1
	// total; membership sampled with replacement and broadcast.
	for i, term := range terms {
		if !specs[i].CrossClass {
			continue
		}
		cols := make([]string, 0, len(term.Effects)+1)
		for _, eff := range term.Effects {
			cols = append(cols, effectColumnName(data, staged, cols, eff, term.ClusterID))
		}
		cols = append(cols, term.ClusterID)
		f, err := crossClassified(n, n, specs[i].Spec, cols, o)
		if err != nil {
			return nil, err
		}
		if err = staged.Bind(f); err != nil {
			return nil, err
		}
	}

	// Stage 8: commit. Fresh chains return the staged frame; otherwise
	// the incoming frame is extended in place.
	if data == nil {
		return staged, nil
	}
	if err = data.Bind(staged); err != nil {
		return nil, err
	}

	return data, nil
}

// resolveN determines the level-1 row count: the incoming dataset's rows,
// else the total of the first standard grouping variable's sizes (all
// standard variables must agree), else the sample-size entry of the first
// cross-classified term.
func resolveN(data *dataset.Frame, terms []formula.TermSpec, specs []GroupSpec,
	sizesByVar map[string][]int, varOrder []string, ss SampleSize) (int, error) {
	if data != nil {
		n := data.NumRows()
		if n == 0 {
			return 0, fmt.Errorf("%w: incoming dataset has no rows", dataset.ErrRowCountMismatch)
		}

		return n, nil
	}

	if len(varOrder) > 0 {
		n := totalRows(sizesByVar[varOrder[0]])
		for _, g := range varOrder[1:] {
			if t := totalRows(sizesByVar[g]); t != n {
				return 0, fmt.Errorf("%w: %q implies %d level-1 rows, %q implies %d",
					ErrInvalidSampleSize, varOrder[0], n, g, t)
			}
		}

		return n, nil
	}

	// Cross-classified-only chain start: take the level-1 total from the
	// first cross-classified term's sample-size entry.
	for i, term := range terms {
		if !specs[i].CrossClass {
			continue
		}
		s, err := ss.sizes(term.ClusterID)
		if err != nil {
			return 0, err
		}

		return totalRows(s), nil
	}

	return 0, fmt.Errorf("%w: cannot determine level-1 sample size", ErrInvalidSampleSize)
}

// effectColumnName picks the output column for an effect: the effect name
// itself when free, "effect.cluster" as the first fallback, then
// "effect.cluster.2", "effect.cluster.3", … until a free name is found.
// A name counts as taken when it exists in the caller's data, among the
// columns staged so far, or among pending names of the current term.
func effectColumnName(data, staged *dataset.Frame, pending []string, effect, cluster string) string {
	taken := func(name string) bool {
		if data != nil && data.Has(name) {
			return true
		}
		if staged.Has(name) {
			return true
		}
		for _, p := range pending {
			if p == name {
				return true
			}
		}

		return false
	}

	if !taken(effect) {
		return effect
	}
	name := effect + "." + cluster
	for i := 2; taken(name); i++ {
		name = fmt.Sprintf("%s.%s.%d", effect, cluster, i)
	}

	return name
}
