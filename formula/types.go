package formula

import "github.com/katalvlaran/ctlquant/dov"

// Kind tags which fields of a Formula are meaningful.
type Kind int

const (
	KindAtomicProp Kind = iota
	KindNegation
	KindUnion
	KindIntersection
	KindBoolean
	KindConjunction
	KindDisjunction
	KindAG
	KindEG
	KindAF
	KindEF
	KindAX
	KindEX
	KindAU
	KindEU
	KindAW
	KindEW
)

// Formula is an immutable CTL formula node. Exactly the fields relevant to
// Kind carry meaning; the rest are zero. Construct nodes with the functions
// below rather than composite literals — they enforce the operand shape
// each Kind expects.
type Formula struct {
	Kind Kind

	// AtomicProp
	Variable string
	Op       dov.Op
	Value    int

	// Boolean
	BoolValue bool

	// Operand(s). Unary nodes (Negation, AG, EG, AF, EF, AX, EX) use Left
	// only; binary nodes (Union, Intersection, Conjunction, Disjunction,
	// AU, EU, AW, EW) use both.
	Left  *Formula
	Right *Formula
}

// AtomicProp constructs a leaf constraint "variable op value".
func AtomicProp(variable string, op dov.Op, value int) *Formula {
	return &Formula{Kind: KindAtomicProp, Variable: variable, Op: op, Value: value}
}

// Negation wraps an atomic-level operand (AtomicProp, Negation, Union, or
// Intersection). It is transient: EliminateNegation removes every Negation
// node from a tree before evaluation.
func Negation(operand *Formula) *Formula {
	return &Formula{Kind: KindNegation, Left: operand}
}

// UnionOf constructs the atomic-level union of two DoV-yielding operands.
func UnionOf(left, right *Formula) *Formula {
	return &Formula{Kind: KindUnion, Left: left, Right: right}
}

// IntersectionOf constructs the atomic-level intersection of two
// DoV-yielding operands.
func IntersectionOf(left, right *Formula) *Formula {
	return &Formula{Kind: KindIntersection, Left: left, Right: right}
}

// Boolean constructs the constant formula True (v = true) or False.
func Boolean(v bool) *Formula {
	return &Formula{Kind: KindBoolean, BoolValue: v}
}

// Conjunction constructs the state-level AND of two formulas.
func Conjunction(left, right *Formula) *Formula {
	return &Formula{Kind: KindConjunction, Left: left, Right: right}
}

// Disjunction constructs the state-level OR of two formulas.
func Disjunction(left, right *Formula) *Formula {
	return &Formula{Kind: KindDisjunction, Left: left, Right: right}
}

// AG constructs "for all paths, globally operand".
func AG(operand *Formula) *Formula { return &Formula{Kind: KindAG, Left: operand} }

// EG constructs "there exists a path, globally operand".
func EG(operand *Formula) *Formula { return &Formula{Kind: KindEG, Left: operand} }

// AF constructs "for all paths, eventually operand".
func AF(operand *Formula) *Formula { return &Formula{Kind: KindAF, Left: operand} }

// EF constructs "there exists a path, eventually operand".
func EF(operand *Formula) *Formula { return &Formula{Kind: KindEF, Left: operand} }

// AX constructs "for all paths, next operand".
func AX(operand *Formula) *Formula { return &Formula{Kind: KindAX, Left: operand} }

// EX constructs "there exists a path, next operand".
func EX(operand *Formula) *Formula { return &Formula{Kind: KindEX, Left: operand} }

// AU constructs "for all paths, left until right".
func AU(left, right *Formula) *Formula { return &Formula{Kind: KindAU, Left: left, Right: right} }

// EU constructs "there exists a path, left until right".
func EU(left, right *Formula) *Formula { return &Formula{Kind: KindEU, Left: left, Right: right} }

// AW constructs "for all paths, left weak-until right".
func AW(left, right *Formula) *Formula { return &Formula{Kind: KindAW, Left: left, Right: right} }

// EW constructs "there exists a path, left weak-until right".
func EW(left, right *Formula) *Formula { return &Formula{Kind: KindEW, Left: left, Right: right} }

// IsAtomic reports whether f's Kind is one of the DoV-yielding, atomic-leaf
// variants (AtomicProp, Union, Intersection) — the only Kinds, besides
// Negation itself, valid as a Negation operand.
func (f *Formula) IsAtomic() bool {
	switch f.Kind {
	case KindAtomicProp, KindUnion, KindIntersection:
		return true
	default:
		return false
	}
}
