// Package ctlquant evaluates quantitative Computation Tree Logic (CTL)
// formulas over finite Kripke structures whose states are vectors of
// bounded non-negative integers. Each (subformula, state) pair gets a
// real-valued satisfaction degree in [-1, 1]: the sign matches the formula's
// classical Boolean truth value at that state, and the magnitude measures
// how robustly that holds — how far the state sits from the constraint's
// decision boundary, relative to the state space's extremes.
//
// Everything is organized under focused subpackages:
//
//	kripkegraph/ — the Kripke structure: Variables, States, transitions
//	dov/         — axis-aligned Domain of Validity set algebra
//	satisfaction/ — the weighted-signed-distance kernel turning a DoV and a
//	                state into a score
//	formula/     — the CTL formula AST, canonical keys, negation elimination
//	resulttable/ — the dense (subformula x state) score grid
//	evaluator/   — the worklist fixed-point algorithms computing every score
//
// This root package is the facade: it wires kripkegraph into the evaluator
// so a caller only needs one function call, Evaluate, to go from a Graph
// and a Formula to a filled-in Table.
//
// Quick example:
//
//	g, _ := kripkegraph.NewGraph(kripkegraph.Variable{Name: "x", Max: 2})
//	_ = g.AddTransition([]int{0}, []int{1})
//	_ = g.AddTransition([]int{1}, []int{2})
//	_ = g.AddTransition([]int{2}, []int{2})
//
//	phi := formula.AtomicProp("x", dov.GE, 2)
//	table, _ := ctlquant.Evaluate(phi, g)
//	score, _, _ := table.Get(formula.Key(phi), "2") // +1: x=2 satisfies x>=2
package ctlquant
