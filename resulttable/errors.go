package resulttable

import "errors"

var (
	// ErrEmptySubformulae is returned by NewTable given zero subformula keys.
	ErrEmptySubformulae = errors.New("resulttable: no subformula keys")

	// ErrEmptyStates is returned by NewTable given zero state keys.
	ErrEmptyStates = errors.New("resulttable: no state keys")

	// ErrDuplicateKey is returned by NewTable when a subformula or state key
	// repeats.
	ErrDuplicateKey = errors.New("resulttable: duplicate key")

	// ErrUnknownSubformula is returned by Get/Set/Row for a key not present
	// in the table.
	ErrUnknownSubformula = errors.New("resulttable: unknown subformula key")

	// ErrUnknownState is returned by Get/Set for a key not present in the
	// table.
	ErrUnknownState = errors.New("resulttable: unknown state key")
)
