// Package kripkegraph adapts lvlath's core graph engine to a finite Kripke
// structure whose states are vectors of small non-negative integers.
//
// What
//
//   - Variable: a named discrete dimension with an inclusive upper bound.
//   - State: a fixed-length tuple of integers, one per Variable, value-typed
//     and usable as a map key.
//   - Graph: the Kripke structure itself — states plus a directed transition
//     relation, exposed as Successors/Predecessors. Each Graph carries a
//     uuid.UUID identity (ID), generated once at construction, for
//     correlating log lines or result tables across multiple graphs built
//     in the same process.
//
// Why
//
//   - The evaluator (package evaluator) depends only on its own small
//     evaluator.Graph interface (string state keys plus Variables, States,
//     StateValues, Successors, Predecessors), never on storage details.
//     Graph does not implement that interface itself; the root package
//     ctlquant adapts it. Synthetic/mock graphs for evaluator tests need
//     not depend on this package at all.
//
// Thread-safety
//
//	Graph guards its vertex set and adjacency with separate sync.RWMutex
//	locks (muState, muAdj), following the same split-lock discipline lvlath's
//	core.Graph uses for its vertices/edges. The evaluator itself is
//	single-threaded and synchronous (it never needs a write lock once
//	construction is done), but a caller populating the graph from multiple
//	goroutines — or inspecting it while a long evaluation runs in another
//	goroutine — gets safe concurrent reads for free.
//
// Sinks
//
//	Every state must have at least one successor. Call Validate before
//	handing a Graph to the evaluator; a state with no outgoing transition is
//	a structural-integrity error (ErrSinkState) — the caller is expected to
//	add a self-loop upstream if the source model legitimately has sinks.
package kripkegraph
