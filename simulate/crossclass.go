// SPDX-License-Identifier: MIT

package simulate

import (
	"fmt"
	"math"

	"github.com/statforge/mixedsim/dataset"
	"github.com/statforge/mixedsim/randgen"
)

// CrossClassified generates cross-classified random effects: one draw per
// crossed id (numIDs rows), broadcast onto sampleSize rows by sampling id
// membership uniformly with replacement from 1..numIDs.
//
// cols names the output columns, order-sensitive: one name per effect in
// spec, followed by the id-variable name for the membership column. The
// broadcast is a many-to-one join by id that preserves the row order of
// the membership draw.
//
// When spec asks for no correlation structure and a single effect, the
// per-id values come from a direct sampling routine (the variable
// simulator) scaled by sqrt(variance) — the Cholesky factor of a scalar.
// Any richer structure routes through randgen.Generate.
//
// Complexity: O(numIDs·k + sampleSize·k).
func CrossClassified(numIDs, sampleSize int, spec randgen.Spec, cols []string, opts ...Option) (*dataset.Frame, error) {
	return crossClassified(numIDs, sampleSize, spec, cols, gatherOptions(opts...))
}

// crossClassified is the option-resolved core, shared with the orchestrator
// so one source drives a whole simulation step.
func crossClassified(numIDs, sampleSize int, spec randgen.Spec, cols []string, o options) (*dataset.Frame, error) {
	// Stage 1: validate shape.
	if numIDs < 1 || sampleSize < 1 {
		return nil, fmt.Errorf("%w: numIDs=%d, sampleSize=%d", randgen.ErrInvalidGenerationSpec, numIDs, sampleSize)
	}
	k := len(spec.Variances)
	if len(cols) != k+1 {
		return nil, fmt.Errorf("%w: %d column names for %d effects plus id",
			randgen.ErrInvalidGenerationSpec, len(cols), k)
	}

	// Stage 2: one draw per crossed id.
	perID, err := crossDraws(numIDs, spec, o)
	if err != nil {
		return nil, err
	}

	// Stage 3: membership sample, uniform with replacement over 1..numIDs.
	var (
		member = make([]float64, sampleSize)
		assign = make([]int, sampleSize)
	)
	for i := 0; i < sampleSize; i++ {
		assign[i] = o.rng.Intn(numIDs)
		member[i] = float64(assign[i] + 1)
	}

	// Stage 4: broadcast per-id values onto the sample, row order preserved.
	var (
		out = dataset.New()
		col = make([]float64, sampleSize)
	)
	for j := 0; j < k; j++ {
		for i := 0; i < sampleSize; i++ {
			col[i] = perID[j][assign[i]]
		}
		if err = out.AddColumn(cols[j], col); err != nil {
			return nil, err
		}
	}
	if err = out.AddColumn(cols[k], member); err != nil {
		return nil, err
	}

	return out, nil
}

// crossDraws produces the per-id effect values, one slice per effect.
func crossDraws(numIDs int, spec randgen.Spec, o options) ([][]float64, error) {
	k := len(spec.Variances)

	// Direct sampling path: single effect, no correlation structure, no
	// standardization requested.
	if k == 1 && spec.Correlations == nil && !spec.SimulateMoments && spec.Moments == nil {
		varsim := o.varsim
		if varsim == nil {
			varsim = ContinuousVariable(o.src, spec.Generator, spec.Params)
		}
		vals, err := varsim(numIDs)
		if err != nil {
			return nil, err
		}
		sd := math.Sqrt(spec.Variances[0])
		for i := range vals {
			vals[i] *= sd
		}

		return [][]float64{vals}, nil
	}

	res, err := randgen.Generate(spec, numIDs, o.randgenOptions()...)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, k)
	for j := 0; j < k; j++ {
		out[j] = make([]float64, numIDs)
		for i := 0; i < numIDs; i++ {
			out[j][i] = res.Effects.At(i, j)
		}
	}

	return out, nil
}
