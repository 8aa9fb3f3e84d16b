package evaluator

import "github.com/katalvlaran/ctlquant/formula"

// File: fixedpoint.go
// Role: the worklist fixed-point algorithms behind AG/EG/AF/EF (unary),
// AU/EU (binary), and AW/EW (materialise-then-max). Every state is seeded
// into the queue once; whenever a state's value changes, its predecessors
// (whose AX/EX aggregate depends on it) are re-queued. The loop terminates
// once no queued state's relaxation changes its value by more than
// convergenceEpsilon — a tolerance worklist propagation over float64 scores
// needs that a boolean fixed point does not.

const convergenceEpsilon = 1e-9

// relax runs the shared worklist driver: seed(s) gives every state's
// initial value, step(s, cur) computes its relaxed value from cur and its
// successors, and better reports whether a newly relaxed value supersedes
// the current one (the only place the ascending/descending asymmetry is
// expressed). The converged values are returned keyed by state.
func (w *walker) relax(seed float64, step func(s string, values map[string]float64) (float64, error), better func(newVal, cur float64) bool) (map[string]float64, error) {
	values := make(map[string]float64, len(w.states))
	for _, s := range w.states {
		values[s] = seed
	}

	queue := append([]string(nil), w.states...)
	queued := make(map[string]bool, len(w.states))
	for _, s := range w.states {
		queued[s] = true
	}

	for len(queue) > 0 {
		if err := w.checkCtx(); err != nil {
			return nil, err
		}
		s := queue[0]
		queue = queue[1:]
		queued[s] = false

		newVal, err := step(s, values)
		if err != nil {
			return nil, err
		}
		if !better(newVal, values[s]) {
			continue
		}
		values[s] = newVal

		preds, err := w.graph.Predecessors(s)
		if err != nil {
			return nil, err
		}
		for _, p := range preds {
			if !queued[p] {
				queue = append(queue, p)
				queued[p] = true
			}
		}
	}

	return values, nil
}

func ascends(newVal, cur float64) bool  { return newVal > cur+convergenceEpsilon }
func descends(newVal, cur float64) bool { return newVal < cur-convergenceEpsilon }

// evalGlobalFuture evaluates AG/EG/AF/EF for f, whose single operand is
// phi. ascending selects AF/EF (least fixed point, seeded at -1); false
// selects AG/EG (greatest fixed point, seeded at +1 — an asymmetric
// direction by design, not a simplification of AF/EF). combine is minFloat
// for the universal (A) path quantifier, maxFloat for the existential (E)
// one.
func (w *walker) evalGlobalFuture(f, phi *formula.Formula, ascending bool, combine func(a, b float64) float64) error {
	phiKey := formula.Key(phi)

	seed := 1.0
	better := descends
	outer := minFloat // ascending=false uses min(phi, succAgg)
	if ascending {
		seed = -1.0
		better = ascends
		outer = maxFloat
	}

	step := func(s string, values map[string]float64) (float64, error) {
		phiScore, err := w.getScore(phiKey, s)
		if err != nil {
			return 0, err
		}
		succs, err := w.graph.Successors(s)
		if err != nil {
			return 0, err
		}
		succAgg, err := aggregate(succs, combine, func(s2 string) (float64, error) { return values[s2], nil })
		if err != nil {
			return 0, err
		}

		return outer(phiScore, succAgg), nil
	}

	values, err := w.relax(seed, step, better)
	if err != nil {
		return err
	}

	return w.writeRow(f, values)
}

// evalUntil evaluates AU/EU for f = until(phi, psi): a least fixed point
// seeded at -1, Z(s) = max(psi(s), min(phi(s), combine_{s'} Z(s'))).
// combine is minFloat for AU, maxFloat for EU.
func (w *walker) evalUntil(f *formula.Formula, combine func(a, b float64) float64) error {
	phiKey, psiKey := formula.Key(f.Left), formula.Key(f.Right)

	step := func(s string, values map[string]float64) (float64, error) {
		phiScore, err := w.getScore(phiKey, s)
		if err != nil {
			return 0, err
		}
		psiScore, err := w.getScore(psiKey, s)
		if err != nil {
			return 0, err
		}
		succs, err := w.graph.Successors(s)
		if err != nil {
			return 0, err
		}
		succAgg, err := aggregate(succs, combine, func(s2 string) (float64, error) { return values[s2], nil })
		if err != nil {
			return 0, err
		}

		return maxFloat(psiScore, minFloat(phiScore, succAgg)), nil
	}

	values, err := w.relax(-1.0, step, ascends)
	if err != nil {
		return err
	}

	return w.writeRow(f, values)
}

// evalWeakUntil evaluates AW/EW for f = weakUntil(phi, psi) by ensuring
// globalPart (AG(phi) or EG(phi)) and untilPart (AU(phi,psi) or
// EU(phi,psi)) are materialised under their own canonical keys in the
// shared table, then taking the pointwise max of the two rows — not an
// online fusion of the two fixed points.
func (w *walker) evalWeakUntil(f, globalPart, untilPart *formula.Formula) error {
	if err := w.ensureEvaluated(globalPart); err != nil {
		return err
	}
	if err := w.ensureEvaluated(untilPart); err != nil {
		return err
	}

	globalRow, err := w.table.Row(formula.Key(globalPart))
	if err != nil {
		return err
	}
	untilRow, err := w.table.Row(formula.Key(untilPart))
	if err != nil {
		return err
	}

	key := formula.Key(f)
	for i, s := range w.states {
		if err := w.table.Set(key, s, maxFloat(globalRow[i], untilRow[i])); err != nil {
			return err
		}
	}

	return nil
}

// ensureEvaluated evaluates f if its row is not already fully populated.
func (w *walker) ensureEvaluated(f *formula.Formula) error {
	key := formula.Key(f)
	if _, ok, err := w.table.Get(key, w.states[0]); err == nil && ok {
		return nil
	}

	return w.evalNode(f)
}

func (w *walker) writeRow(f *formula.Formula, values map[string]float64) error {
	key := formula.Key(f)
	for _, s := range w.states {
		if err := w.table.Set(key, s, values[s]); err != nil {
			return err
		}
	}

	return nil
}
