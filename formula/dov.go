package formula

import "github.com/katalvlaran/ctlquant/dov"

// YieldDov evaluates an atomic-level formula (AtomicProp, Union,
// Intersection) into the Domain of Validity it denotes, intersected into
// ambient. varIndex maps variable name to axis index in ambient/maxValues;
// callers typically build it once from a graph's variable order.
//
// Returns ErrUnknownVariable for an AtomicProp naming a variable absent
// from varIndex, ErrNegationNotEliminated for a Negation node, and
// ErrNotAtomic for any state-level (Boolean/Conjunction/temporal) Kind.
func YieldDov(f *Formula, ambient dov.Box, maxValues []int, varIndex map[string]int) (dov.Box, error) {
	switch f.Kind {
	case KindAtomicProp:
		idx, ok := varIndex[f.Variable]
		if !ok {
			return nil, ErrUnknownVariable
		}

		return dov.AtomicBox(ambient, idx, f.Op, f.Value, maxValues[idx])
	case KindUnion:
		left, err := YieldDov(f.Left, ambient, maxValues, varIndex)
		if err != nil {
			return nil, err
		}
		right, err := YieldDov(f.Right, ambient, maxValues, varIndex)
		if err != nil {
			return nil, err
		}

		return dov.Union(left, right)
	case KindIntersection:
		left, err := YieldDov(f.Left, ambient, maxValues, varIndex)
		if err != nil {
			return nil, err
		}
		right, err := YieldDov(f.Right, ambient, maxValues, varIndex)
		if err != nil {
			return nil, err
		}

		return dov.Intersect(left, right)
	case KindNegation:
		return nil, ErrNegationNotEliminated
	default:
		return nil, ErrNotAtomic
	}
}
