package formula

// Subformulae returns f's subformula list in post-order (every child before
// its parent). Atomic-leaf variants (AtomicProp, Union, Intersection) and
// Boolean constants are indivisible for this purpose: their internal
// structure is consumed wholesale by YieldDov, not decomposed into separate
// result-table rows (spec §4.7).
//
// Returns ErrNegationNotEliminated if f (or any descendant) still contains
// a Negation node — callers are expected to run EliminateNegation first.
func Subformulae(f *Formula) ([]*Formula, error) {
	switch f.Kind {
	case KindAtomicProp, KindUnion, KindIntersection, KindBoolean:
		return []*Formula{f}, nil
	case KindNegation:
		return nil, ErrNegationNotEliminated
	case KindConjunction, KindDisjunction, KindAU, KindEU, KindAW, KindEW:
		left, err := Subformulae(f.Left)
		if err != nil {
			return nil, err
		}
		right, err := Subformulae(f.Right)
		if err != nil {
			return nil, err
		}

		out := make([]*Formula, 0, len(left)+len(right)+1)
		out = append(out, left...)
		out = append(out, right...)

		return append(out, f), nil
	case KindAG, KindEG, KindAF, KindEF, KindAX, KindEX:
		operand, err := Subformulae(f.Left)
		if err != nil {
			return nil, err
		}

		return append(operand, f), nil
	default:
		panic("formula: Subformulae on unknown Kind")
	}
}
