// Package evaluator computes a satisfaction-degree score for every
// (subformula, state) pair of a normalised formula tree against a Kripke
// structure, writing the results into a resulttable.Table.
//
// Graph is a narrow interface (Variables, States, StateValues, Successors,
// Predecessors) rather than a concrete *kripkegraph.Graph, so the worklist
// algorithms here can be driven and unit-tested against small synthetic
// graphs without constructing a full kripkegraph.Graph for every case.
//
// Evaluation proceeds bottom-up in the post-order given by
// formula.Subformulae: atomic leaves and the Boolean constant are scored
// directly; Conjunction/Disjunction take the pointwise min/max of their
// already-scored children; AX/EX aggregate a state's successors' scores;
// AG/EG/AF/EF run a worklist fixed-point search seeded from every state and
// relaxed via predecessor propagation, ascending (ϕ ∨ ...) for AF/EF and
// descending (ϕ ∧ ...) for AG/EG — the greatest-fixed-point direction for
// AG/EG is preserved exactly: values only ever decrease during relaxation,
// detected with a strict "<" comparison, matching the asymmetry between the
// two temporal directions rather than a symmetric absolute-difference test.
// AW/EW are not evaluated online: AW(φ,ψ) and EW(φ,ψ) materialise AG(φ)/
// AU(φ,ψ) (resp. EG(φ)/EU(φ,ψ)) under their own canonical keys in the same
// shared table — so a formula using both AG(φ) and AW(φ,ψ) pays for AG(φ)
// once — and then take the pointwise max of the two rows.
package evaluator
