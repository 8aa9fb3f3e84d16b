// Package formula defines the CTL formula AST as a single tagged sum type,
// its canonical key grammar, negation elimination, and subformula
// enumeration.
//
// What
//
//   - Formula is an immutable tagged tree: exactly one of its Kind-tagged
//     fields is meaningful per node, matched exhaustively by the evaluator
//     instead of a dynamic-dispatch hierarchy (spec §9, "Polymorphism over
//     formula variants" design note).
//   - Key(f) renders f's canonical ASCII key (spec §6 grammar); structurally
//     equal subformulae render identical keys so the evaluator's result
//     table (package resulttable) can share their scores.
//   - EliminateNegation(f) returns a new, negation-free tree: a pure
//     rewrite (spec §9, "Negation handling" design note), never mutating f.
//   - Subformulae(f) returns f's subformula list in post-order: every
//     child before its parent, so a caller evaluating in that order always
//     finds its children's scores already present.
//
// Non-goals
//
//	Parsing CTL source text into a Formula is out of scope (spec §1); this
//	package only defines the tree callers are expected to construct via the
//	constructor functions (AtomicProp, Conjunction, AG, AU, ...).
package formula
