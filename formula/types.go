package formula

import "errors"

var (
	// ErrMalformedFormula indicates the formula string lacks exactly one '~'
	// separator, has an empty outcome, or contains an unterminated
	// parenthesized random-effect group.
	ErrMalformedFormula = errors.New("formula: malformed formula")

	// ErrMalformedTerm indicates a random-effect term without exactly one '|'
	// separator, or with an empty effect list or cluster id after trimming.
	ErrMalformedTerm = errors.New("formula: malformed random-effect term")
)

// Spec is the decomposition of a raw mixed-model formula.
//
// RandomTerms keeps the parenthesized "(effects | group)" segments verbatim,
// in left-to-right source order. Downstream stages rely on that order to
// align generation parameters with cluster-id variables.
type Spec struct {
	// Outcome is the trimmed left-hand side of '~'.
	Outcome string

	// Fixed is the fixed-effects sub-formula, rebuilt as "~ a + b".
	// An intercept-only model (no fixed terms outside random groups)
	// yields "~ 1".
	Fixed string

	// RandomTerms are the "(... | ...)" segments, source order preserved.
	RandomTerms []string
}

// TermSpec is one parsed random-effect term.
type TermSpec struct {
	// ClusterID is the grouping variable to the right of '|', trimmed.
	ClusterID string

	// Effects are the '+'-separated tokens to the left of '|', trimmed,
	// in source order. len(Effects) determines how many variance
	// parameters the term requires.
	Effects []string
}
