package evaluator

import "errors"

var (
	// ErrGraphNil is returned when Evaluate is given a nil Graph.
	ErrGraphNil = errors.New("evaluator: graph is nil")

	// ErrNoStates is returned when a Graph reports zero states.
	ErrNoStates = errors.New("evaluator: graph has no states")

	// ErrUnknownKind is returned when a Formula carries a Kind the
	// evaluator does not recognise (a formula package / evaluator version
	// mismatch).
	ErrUnknownKind = errors.New("evaluator: unknown formula kind")

	// ErrUnsupportedOperator is the evaluator-level face of an atomic
	// formula carrying an Op dov.AtomicBox rejects; it wraps (and is
	// wrapped around) the originating dov.ErrUnsupportedOperator, so a
	// caller depending only on this package can still match it with
	// errors.Is.
	ErrUnsupportedOperator = errors.New("evaluator: unsupported atomic operator")

	// ErrMissingSubformulaScore is returned when a parent node is
	// evaluated before one of its operands has a score recorded for the
	// state in question. This is an invariant violation — buildEvaluationPlan
	// orders every node so its operands are always scored first — never an
	// expected condition, and is never silently treated as a neutral value.
	ErrMissingSubformulaScore = errors.New("evaluator: missing subformula score")
)
