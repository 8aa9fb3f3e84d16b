// Package dov: sentinel error set.
//
// Every message is prefixed "dov: " for consistent log grepping. Algorithms
// return these sentinels directly; callers match with errors.Is.
package dov

import "errors"

var (
	// ErrUnsupportedOperator is returned when an atomic operator is neither
	// >= nor <=: a caller contract violation per spec §7.
	ErrUnsupportedOperator = errors.New("dov: unsupported atomic operator")

	// ErrAxisIndexOutOfRange is returned when a requested axis index falls
	// outside the Box's dimensionality.
	ErrAxisIndexOutOfRange = errors.New("dov: axis index out of range")

	// ErrDimensionMismatch is returned when two Boxes passed to Intersect or
	// Union have differing numbers of axes.
	ErrDimensionMismatch = errors.New("dov: box dimension mismatch")
)
