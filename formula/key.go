package formula

import (
	"fmt"

	"github.com/katalvlaran/ctlquant/dov"
)

// Key renders f's canonical ASCII key. Structurally equal subformulae
// produce identical keys regardless of where in the tree they occur or how
// they were constructed, so resulttable can share one row across callers
// asking for "the same" subformula.
func Key(f *Formula) string {
	switch f.Kind {
	case KindAtomicProp:
		return fmt.Sprintf("(%s %s %d)", f.Variable, opSymbol(f.Op), f.Value)
	case KindNegation:
		return "!" + Key(f.Left)
	case KindUnion:
		return "(" + Key(f.Left) + " | " + Key(f.Right) + ")"
	case KindIntersection:
		return "(" + Key(f.Left) + " & " + Key(f.Right) + ")"
	case KindBoolean:
		if f.BoolValue {
			return "True"
		}

		return "False"
	case KindConjunction:
		return "(" + Key(f.Left) + " && " + Key(f.Right) + ")"
	case KindDisjunction:
		return "(" + Key(f.Left) + " || " + Key(f.Right) + ")"
	case KindAG:
		return "AG (" + Key(f.Left) + ")"
	case KindEG:
		return "EG (" + Key(f.Left) + ")"
	case KindAF:
		return "AF (" + Key(f.Left) + ")"
	case KindEF:
		return "EF (" + Key(f.Left) + ")"
	case KindAX:
		return "AX (" + Key(f.Left) + ")"
	case KindEX:
		return "EX (" + Key(f.Left) + ")"
	case KindAU:
		return "A (" + Key(f.Left) + ") U (" + Key(f.Right) + ")"
	case KindEU:
		return "E (" + Key(f.Left) + ") U (" + Key(f.Right) + ")"
	case KindAW:
		return "A (" + Key(f.Left) + ") W (" + Key(f.Right) + ")"
	case KindEW:
		return "E (" + Key(f.Left) + ") W (" + Key(f.Right) + ")"
	default:
		panic("formula: Key on unknown Kind")
	}
}

func opSymbol(op dov.Op) string {
	if op == dov.GE {
		return ">="
	}

	return "<="
}
