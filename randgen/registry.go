// SPDX-License-Identifier: MIT

// Package randgen: the sampler registry.
//
// Distribution names resolve to factories once, at spec-validation time;
// an unregistered name fails fast with ErrUnknownGenerator. Built-ins are
// backed by gonum/stat/distuv and parameterized through Spec.Params.
package randgen

import (
	"fmt"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws single values from one distribution.
// All gonum/stat/distuv distributions satisfy it.
type Sampler interface {
	Rand() float64
}

// Factory builds a Sampler from generator-specific params and a source.
// Factories must reject invalid params with ErrInvalidGenerationSpec.
type Factory func(params map[string]float64, src rand.Source) (Sampler, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{
		"normal":      newNormal,
		"uniform":     newUniform,
		"exponential": newExponential,
		"gamma":       newGamma,
		"beta":        newBeta,
		"laplace":     newLaplace,
		"studentst":   newStudentsT,
		"chisquared":  newChiSquared,
	}
)

// Register installs a custom sampler factory under name.
// Overwriting an existing entry is rejected with ErrInvalidGenerationSpec;
// built-ins cannot be shadowed.
func Register(name string, f Factory) error {
	if name == "" || f == nil {
		return fmt.Errorf("%w: Register requires a name and a factory", ErrInvalidGenerationSpec)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[name]; ok {
		return fmt.Errorf("%w: generator %q already registered", ErrInvalidGenerationSpec, name)
	}
	registry[name] = f

	return nil
}

// NewSampler resolves name (empty ⇒ DefaultGenerator) against the registry
// and builds a Sampler over src. Resolution happens once, up front; an
// unregistered name fails with ErrUnknownGenerator.
func NewSampler(name string, params map[string]float64, src rand.Source) (Sampler, error) {
	if name == "" {
		name = DefaultGenerator
	}
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}

	return f(params, src)
}

// param reads key from params, falling back to def when absent.
func param(params map[string]float64, key string, def float64) float64 {
	if v, ok := params[key]; ok {
		return v
	}

	return def
}

// ---------- Built-in factories (distuv-backed) ----------

func newNormal(params map[string]float64, src rand.Source) (Sampler, error) {
	sigma := param(params, "sd", 1)
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: normal requires sd > 0", ErrInvalidGenerationSpec)
	}

	return distuv.Normal{Mu: param(params, "mean", 0), Sigma: sigma, Src: src}, nil
}

func newUniform(params map[string]float64, src rand.Source) (Sampler, error) {
	min, max := param(params, "min", 0), param(params, "max", 1)
	if min >= max {
		return nil, fmt.Errorf("%w: uniform requires min < max", ErrInvalidGenerationSpec)
	}

	return distuv.Uniform{Min: min, Max: max, Src: src}, nil
}

func newExponential(params map[string]float64, src rand.Source) (Sampler, error) {
	rate := param(params, "rate", 1)
	if rate <= 0 {
		return nil, fmt.Errorf("%w: exponential requires rate > 0", ErrInvalidGenerationSpec)
	}

	return distuv.Exponential{Rate: rate, Src: src}, nil
}

func newGamma(params map[string]float64, src rand.Source) (Sampler, error) {
	alpha, beta := param(params, "shape", 1), param(params, "rate", 1)
	if alpha <= 0 || beta <= 0 {
		return nil, fmt.Errorf("%w: gamma requires shape > 0 and rate > 0", ErrInvalidGenerationSpec)
	}

	return distuv.Gamma{Alpha: alpha, Beta: beta, Src: src}, nil
}

func newBeta(params map[string]float64, src rand.Source) (Sampler, error) {
	alpha, beta := param(params, "alpha", 1), param(params, "beta", 1)
	if alpha <= 0 || beta <= 0 {
		return nil, fmt.Errorf("%w: beta requires alpha > 0 and beta > 0", ErrInvalidGenerationSpec)
	}

	return distuv.Beta{Alpha: alpha, Beta: beta, Src: src}, nil
}

func newLaplace(params map[string]float64, src rand.Source) (Sampler, error) {
	scale := param(params, "scale", 1)
	if scale <= 0 {
		return nil, fmt.Errorf("%w: laplace requires scale > 0", ErrInvalidGenerationSpec)
	}

	return distuv.Laplace{Mu: param(params, "mean", 0), Scale: scale, Src: src}, nil
}

func newStudentsT(params map[string]float64, src rand.Source) (Sampler, error) {
	nu := param(params, "df", 5)
	if nu <= 0 {
		return nil, fmt.Errorf("%w: studentst requires df > 0", ErrInvalidGenerationSpec)
	}

	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu, Src: src}, nil
}

func newChiSquared(params map[string]float64, src rand.Source) (Sampler, error) {
	k := param(params, "df", 1)
	if k <= 0 {
		return nil, fmt.Errorf("%w: chisquared requires df > 0", ErrInvalidGenerationSpec)
	}

	return distuv.ChiSquared{K: k, Src: src}, nil
}
