package formula

import (
	"fmt"
	"strings"
)

// pipe separates the effect list from the cluster id inside one term.
const pipe = "|"

// ParseTerm parses one random-effect term of the form "(e1 + e2 | group)".
// The enclosing parentheses are optional; Parse emits terms with them.
//
// The left side of '|' splits on '+' into effect names; the right side is
// the cluster-id variable. Both sides are whitespace-trimmed.
//
// Errors: ErrMalformedTerm when '|' is missing or repeated, the effect
// list is empty (or contains an empty token), or the cluster id is empty.
//
// Complexity: O(len(term)).
func ParseTerm(term string) (TermSpec, error) {
	// Stage 1: strip whitespace and the enclosing parenthesis, if present.
	var body string
	body = strings.TrimSpace(term)
	if strings.HasPrefix(body, "(") && strings.HasSuffix(body, ")") {
		body = body[1 : len(body)-1]
	}

	// Stage 2: split on '|' (exactly one occurrence).
	var sides []string
	sides = strings.Split(body, pipe)
	if len(sides) != 2 {
		return TermSpec{}, fmt.Errorf("%w: expected exactly one %q in %q", ErrMalformedTerm, pipe, term)
	}

	var cluster string
	cluster = strings.TrimSpace(sides[1])
	if cluster == "" {
		return TermSpec{}, fmt.Errorf("%w: empty cluster id in %q", ErrMalformedTerm, term)
	}

	// Stage 3: split the effect list on '+', trimming each token.
	var effects []string
	for _, tok := range strings.Split(sides[0], "+") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return TermSpec{}, fmt.Errorf("%w: empty effect in %q", ErrMalformedTerm, term)
		}
		effects = append(effects, tok)
	}

	return TermSpec{ClusterID: cluster, Effects: effects}, nil
}
