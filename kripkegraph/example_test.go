package kripkegraph_test

import (
	"fmt"

	"github.com/katalvlaran/ctlquant/kripkegraph"
)

// ExampleGraph_Successors builds the one-variable seed chain (states 0, 1,
// 2; transitions 0->1, 1->2, 2->2) and reads state 0's only successor.
func ExampleGraph_Successors() {
	g, err := kripkegraph.NewGraph(kripkegraph.Variable{Name: "x", Max: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = g.AddTransition([]int{0}, []int{1})
	_ = g.AddTransition([]int{1}, []int{2})
	_ = g.AddTransition([]int{2}, []int{2})

	s0, _ := g.AddState([]int{0})
	succ, err := g.Successors(s0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(succ[0])
	// Output:
	// (1)
}
