package dov_test

import (
	"fmt"

	"github.com/katalvlaran/ctlquant/dov"
)

// ExampleAtomicBox restricts a single variable's axis to x >= 2 on an
// ambient {0,1,2} domain: only the value 2 survives.
func ExampleAtomicBox() {
	ambient := dov.Full([]int{2})
	box, err := dov.AtomicBox(ambient, 0, dov.GE, 2, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(box)
	// Output:
	// [[2]]
}

// ExampleUnion demonstrates that unioning two disjoint atomic constraints on
// the same axis yields a genuinely non-contiguous set, not an interval.
func ExampleUnion() {
	ambient := dov.Full([]int{3})
	low, _ := dov.AtomicBox(ambient, 0, dov.LE, 0, 3)
	high, _ := dov.AtomicBox(ambient, 0, dov.GE, 3, 3)

	union, err := dov.Union(low, high)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(union)
	// Output:
	// [[0 3]]
}
