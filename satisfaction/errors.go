// Package satisfaction: sentinel error set.
package satisfaction

import "errors"

var (
	// ErrArityMismatch is returned when a state's coordinate count does not
	// match the Box's axis count.
	ErrArityMismatch = errors.New("satisfaction: state arity does not match box dimensionality")

	// ErrEmptyBox is returned when FindExtremeState is asked to search a
	// zero-axis Box.
	ErrEmptyBox = errors.New("satisfaction: box has no axes")
)
