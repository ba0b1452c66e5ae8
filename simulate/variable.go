// SPDX-License-Identifier: MIT

package simulate

import (
	"github.com/statforge/mixedsim/randgen"
	"golang.org/x/exp/rand"
)

// VariableSimulator draws n values of one simulated variable. It is the
// narrow collaborator contract through which the orchestrator consumes
// continuous variable generation; external pipeline stages (fixed-effect
// simulation) satisfy the same contract.
type VariableSimulator func(n int) ([]float64, error)

// ContinuousVariable returns a VariableSimulator drawing independent
// values from the named registered generator (empty name ⇒ standard
// normal) over src.
func ContinuousVariable(src rand.Source, generator string, params map[string]float64) VariableSimulator {
	return func(n int) ([]float64, error) {
		s, err := randgen.NewSampler(generator, params, src)
		if err != nil {
			return nil, err
		}
		out := make([]float64, n)
		for i := range out {
			out[i] = s.Rand()
		}

		return out, nil
	}
}
