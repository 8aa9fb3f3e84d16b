// Package resulttable stores the evaluator's working set: one satisfaction
// score per (subformula, state) pair.
//
// Table is a dense, row-major float64 grid — one row per subformula key, one
// column per state — the same flat-slice layout as a dense linear-algebra
// matrix, because the access pattern is identical: fixed dimensions known up
// front, O(1) random access, no sparsity to exploit (every reachable
// subformula is eventually evaluated at every state). An unset cell holds
// NaN so a caller can distinguish "not yet evaluated" from "evaluated to
// zero" without a parallel bitset.
//
// Table never decides evaluation order: the evaluator package writes scores
// into it in whatever order its worklist algorithm requires and reads
// already-written rows back out (e.g. a temporal operator reading its
// operand's row before its own fixed-point loop starts).
package resulttable
