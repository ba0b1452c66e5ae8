// Package formula parses the mixed-model formula mini-language used to
// specify multilevel simulation structures.
//
// 🚀 What does it parse?
//
//	The conventional lme4-style syntax:
//
//	  y ~ x1 + x2 + (1 + x3 | g1) + (1 | g2)
//
//	which decomposes into:
//	  • an outcome name           — "y"
//	  • a fixed-effects formula   — "~ x1 + x2"
//	  • random-effect terms       — "(1 + x3 | g1)", "(1 | g2)", in source order
//
// ✨ Key guarantees:
//   - Explicit tokenizer, not regex substitution: every parse failure is a
//     structured sentinel error, never a silently malformed string.
//   - A `+` inside a parenthesized (effects | group) term is protected and
//     never used as a split point.
//   - Random-effect terms preserve their left-to-right source order; later
//     pipeline stages align generation parameters to terms by position.
//
// ⚙️ Usage:
//
//	spec, err := formula.Parse("y ~ time + (1 + time | subject)")
//	if err != nil { ... }              // formula.ErrMalformedFormula
//	term, err := formula.ParseTerm(spec.RandomTerms[0])
//	if err != nil { ... }              // formula.ErrMalformedTerm
//	// term.Effects == []string{"1", "time"}, term.ClusterID == "subject"
//
// Complexity: parsing is a single O(len(formula)) scan.
package formula
