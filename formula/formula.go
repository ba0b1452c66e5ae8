package formula

import (
	"fmt"
	"strings"
)

// tilde separates outcome from the right-hand side; exactly one is required.
const tilde = "~"

// Parse splits a raw mixed-model formula into outcome, fixed-effects
// sub-formula, and ordered random-effect terms.
//
// The right-hand side is split on '+' boundaries, except that any '+'
// inside a parenthesized "(effects | group)" segment is protected. The
// segments are extracted first by a depth-counting scan; the remainder,
// with empty tokens dropped, becomes the fixed formula.
//
// Errors: ErrMalformedFormula when '~' is missing or repeated, the outcome
// is empty, or a parenthesized group is unterminated/unopened.
//
// Complexity: O(len(raw)) time, O(len(raw)) space.
func Parse(raw string) (Spec, error) {
	// Stage 1: split on '~' (exactly one occurrence).
	var parts []string
	parts = strings.Split(raw, tilde)
	if len(parts) != 2 {
		return Spec{}, fmt.Errorf("%w: expected exactly one %q in %q", ErrMalformedFormula, tilde, raw)
	}

	var outcome string
	outcome = strings.TrimSpace(parts[0])
	if outcome == "" {
		return Spec{}, fmt.Errorf("%w: empty outcome in %q", ErrMalformedFormula, raw)
	}

	// Stage 2: depth-counting scan of the right-hand side.
	// Collect each balanced "(...)" segment as one random-effect term and
	// keep everything at depth 0 for the fixed formula.
	var (
		rhs     = parts[1]
		depth   int             // current parenthesis nesting level
		segment strings.Builder // current "(...)" segment under capture
		fixed   strings.Builder // depth-0 remainder
		terms   []string
	)
	for _, r := range rhs {
		switch r {
		case '(':
			depth++
			segment.WriteRune(r)
		case ')':
			if depth == 0 {
				return Spec{}, fmt.Errorf("%w: unopened ')' in %q", ErrMalformedFormula, raw)
			}
			depth--
			segment.WriteRune(r)
			if depth == 0 {
				terms = append(terms, segment.String())
				segment.Reset()
			}
		default:
			if depth > 0 {
				segment.WriteRune(r)
			} else {
				fixed.WriteRune(r)
			}
		}
	}
	if depth != 0 {
		return Spec{}, fmt.Errorf("%w: unterminated '(' in %q", ErrMalformedFormula, raw)
	}

	// Stage 3: rebuild the fixed sub-formula from the depth-0 remainder.
	// Removing "(...)" segments leaves dangling '+' runs; splitting on '+'
	// and dropping empty tokens normalizes them away.
	var kept []string
	for _, tok := range strings.Split(fixed.String(), "+") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			kept = append(kept, tok)
		}
	}
	var fixedFormula string
	if len(kept) == 0 {
		fixedFormula = tilde + " 1" // intercept-only convention
	} else {
		fixedFormula = tilde + " " + strings.Join(kept, " + ")
	}

	return Spec{Outcome: outcome, Fixed: fixedFormula, RandomTerms: terms}, nil
}
