package formula

import "github.com/katalvlaran/ctlquant/dov"

// File: negation.go
// Role: pure negation elimination (spec §4.1, §9 "Negation handling" design
// note). Rather than the lazy wrap-then-unwrap protocol the original source
// uses (a child is first re-wrapped in Negation, then a second pass unwraps
// it via negate()), resolveAtomic carries a single "are we currently under
// negation" flag through one recursive pass — same result, no intermediate
// Negation nodes ever get allocated.

// EliminateNegation returns a new, negation-free tree equivalent to f. It
// never mutates f.
func EliminateNegation(f *Formula) *Formula {
	switch f.Kind {
	case KindAtomicProp, KindUnion, KindIntersection:
		return resolveAtomic(f, false)
	case KindNegation:
		return resolveAtomic(f.Left, true)
	case KindBoolean:
		return f
	case KindConjunction, KindDisjunction, KindAU, KindEU, KindAW, KindEW:
		return &Formula{Kind: f.Kind, Left: EliminateNegation(f.Left), Right: EliminateNegation(f.Right)}
	case KindAG, KindEG, KindAF, KindEF, KindAX, KindEX:
		return &Formula{Kind: f.Kind, Left: EliminateNegation(f.Left)}
	default:
		panic("formula: EliminateNegation on unknown Kind")
	}
}

// resolveAtomic returns the negation-free form of f (negated=false) or of
// Negation(f) (negated=true). Only valid on atomic-level Kinds.
func resolveAtomic(f *Formula, negated bool) *Formula {
	switch f.Kind {
	case KindAtomicProp:
		if !negated {
			return f
		}
		if f.Op == dov.GE {
			return AtomicProp(f.Variable, dov.LE, f.Value-1)
		}

		return AtomicProp(f.Variable, dov.GE, f.Value+1)
	case KindNegation:
		return resolveAtomic(f.Left, !negated)
	case KindUnion:
		if !negated {
			return UnionOf(resolveAtomic(f.Left, false), resolveAtomic(f.Right, false))
		}

		return IntersectionOf(resolveAtomic(f.Left, true), resolveAtomic(f.Right, true))
	case KindIntersection:
		if !negated {
			return IntersectionOf(resolveAtomic(f.Left, false), resolveAtomic(f.Right, false))
		}

		return UnionOf(resolveAtomic(f.Left, true), resolveAtomic(f.Right, true))
	default:
		panic("formula: resolveAtomic on non-atomic Kind")
	}
}
