// SPDX-License-Identifier: MIT

// Package randgen: specification types and sentinel errors.
package randgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGenerationSpec indicates a Spec with no variances, a
	// negative variance, a non-positive resolved standard deviation, or a
	// variance count that disagrees with the consumer's effect count.
	ErrInvalidGenerationSpec = errors.New("randgen: invalid generation spec")

	// ErrUnknownGenerator indicates a generator name with no registry entry.
	// It belongs to the ErrInvalidGenerationSpec family.
	ErrUnknownGenerator = fmt.Errorf("%w: unknown generator", ErrInvalidGenerationSpec)

	// ErrInvalidCorrelationSpec indicates an upper-triangular correlation
	// list whose length differs from k·(k−1)/2, or a value outside [−1, 1].
	ErrInvalidCorrelationSpec = errors.New("randgen: invalid correlation spec")
)

// Moments is a (mean, sd) pair used to standardize raw draws.
type Moments struct {
	Mean float64
	SD   float64
}

// Spec describes one random-effect group: how many effects, how to draw
// them, and which variance/correlation structure to impose.
type Spec struct {
	// Variances holds one target variance per effect, aligned with the
	// term's effect order. Required; each value must be ≥ 0.
	Variances []float64

	// Generator names the registered sampler. Empty selects
	// DefaultGenerator ("normal").
	Generator string

	// Moments optionally supplies theoretical standardization moments.
	// Nil means (0, 1) unless SimulateMoments is set.
	Moments *Moments

	// SimulateMoments, when true, estimates (mean, sd) empirically from a
	// large reference draw of the generator instead of using Moments.
	SimulateMoments bool

	// Correlations is the optional upper-triangular list of pairwise
	// correlations among the group's effects, row by row:
	// (1,2), (1,3), ..., (1,k), (2,3), ..., (k−1,k).
	Correlations []float64

	// Params are generator-specific parameters, forwarded verbatim to the
	// sampler factory (e.g. {"rate": 2} for exponential).
	Params map[string]float64
}

// k reports the number of effects in the group.
func (s Spec) k() int { return len(s.Variances) }

// validate checks the structural invariants that do not depend on n.
func (s Spec) validate() error {
	if len(s.Variances) == 0 {
		return fmt.Errorf("%w: variances are required", ErrInvalidGenerationSpec)
	}
	for i, v := range s.Variances {
		if v < 0 {
			return fmt.Errorf("%w: negative variance %v at position %d", ErrInvalidGenerationSpec, v, i)
		}
	}
	if s.Correlations != nil {
		if err := validateUpper(s.k(), s.Correlations); err != nil {
			return err
		}
	}

	return nil
}
