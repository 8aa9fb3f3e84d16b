// Package formula: sentinel error set.
package formula

import "errors"

var (
	// ErrNegationNotEliminated is returned by Subformulae (and surfaced by
	// YieldDov) when a Negation node is encountered after normalisation was
	// expected to have removed it. Per spec §7 this is a logic error, not a
	// recoverable condition.
	ErrNegationNotEliminated = errors.New("formula: negation not eliminated")

	// ErrUnknownVariable is returned when an AtomicProp names a variable
	// absent from the caller's variable index.
	ErrUnknownVariable = errors.New("formula: unknown variable")

	// ErrNotAtomic is returned when YieldDov is asked to operate on a
	// state-level (Boolean/Conjunction/temporal) node.
	ErrNotAtomic = errors.New("formula: not an atomic-level formula")
)
