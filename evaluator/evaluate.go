package evaluator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ctlquant/dov"
	"github.com/katalvlaran/ctlquant/formula"
	"github.com/katalvlaran/ctlquant/resulttable"
	"github.com/katalvlaran/ctlquant/satisfaction"
)

// walker encapsulates the mutable evaluation state for one Evaluate call.
type walker struct {
	graph     Graph
	opts      Options
	table     *resulttable.Table
	states    []string
	values    map[string][]int
	maxValues []int
	varIndex  map[string]int
	ambient   dov.Box
}

// Evaluate computes a satisfaction score for root and every subformula it
// contains, at every state of g, and returns the populated table.
//
// root is normalised internally (EliminateNegation); callers need not call
// it themselves. Returns ErrGraphNil for a nil g, ErrNoStates if g reports
// zero states, and any error formula.Subformulae, formula.YieldDov, or
// satisfaction.Score return along the way.
func Evaluate(root *formula.Formula, g Graph, opts ...Option) (*resulttable.Table, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	states := g.States()
	if len(states) == 0 {
		return nil, ErrNoStates
	}

	normalised := formula.EliminateNegation(root)
	keys, nodes, err := buildEvaluationPlan(normalised)
	if err != nil {
		return nil, err
	}

	table, err := resulttable.NewTable(keys, states)
	if err != nil {
		return nil, err
	}

	vars := g.Variables()
	maxValues := make([]int, len(vars))
	varIndex := make(map[string]int, len(vars))
	for i, v := range vars {
		maxValues[i] = v.Max
		varIndex[v.Name] = i
	}

	values := make(map[string][]int, len(states))
	for _, s := range states {
		v, err := g.StateValues(s)
		if err != nil {
			return nil, fmt.Errorf("evaluator: state %q: %w", s, err)
		}
		values[s] = v
	}

	w := &walker{
		graph:     g,
		opts:      resolveOptions(opts),
		table:     table,
		states:    states,
		values:    values,
		maxValues: maxValues,
		varIndex:  varIndex,
		ambient:   dov.Full(maxValues),
	}

	for _, node := range nodes {
		if err := w.checkCtx(); err != nil {
			return nil, err
		}
		if err := w.evalNode(node); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// buildEvaluationPlan returns the deduplicated, dependency-ordered list of
// (key, node) pairs Evaluate must populate: root's post-order subformulae,
// with AG(φ)/AU(φ,ψ) (resp. EG(φ)/EU(φ,ψ)) spliced in immediately before
// every AW (resp. EW) node they materialise.
func buildEvaluationPlan(root *formula.Formula) ([]string, []*formula.Formula, error) {
	subs, err := formula.Subformulae(root)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]bool, len(subs))
	var keys []string
	var nodes []*formula.Formula
	add := func(f *formula.Formula) {
		k := formula.Key(f)
		if seen[k] {
			return
		}
		seen[k] = true
		keys = append(keys, k)
		nodes = append(nodes, f)
	}

	for _, sf := range subs {
		switch sf.Kind {
		case formula.KindAW:
			add(formula.AG(sf.Left))
			add(formula.AU(sf.Left, sf.Right))
		case formula.KindEW:
			add(formula.EG(sf.Left))
			add(formula.EU(sf.Left, sf.Right))
		}
		add(sf)
	}

	return keys, nodes, nil
}

func (w *walker) checkCtx() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// evalNode dispatches f to the right scoring routine and writes one score
// per state into w.table under formula.Key(f).
func (w *walker) evalNode(f *formula.Formula) error {
	switch f.Kind {
	case formula.KindAtomicProp, formula.KindUnion, formula.KindIntersection:
		return w.evalAtomic(f)
	case formula.KindBoolean:
		return w.evalBoolean(f)
	case formula.KindConjunction:
		return w.evalLattice(f, minFloat)
	case formula.KindDisjunction:
		return w.evalLattice(f, maxFloat)
	case formula.KindAX:
		return w.evalNext(f, minFloat)
	case formula.KindEX:
		return w.evalNext(f, maxFloat)
	case formula.KindAG:
		return w.evalGlobalFuture(f, f.Left, false, minFloat)
	case formula.KindEG:
		return w.evalGlobalFuture(f, f.Left, false, maxFloat)
	case formula.KindAF:
		return w.evalGlobalFuture(f, f.Left, true, minFloat)
	case formula.KindEF:
		return w.evalGlobalFuture(f, f.Left, true, maxFloat)
	case formula.KindAU:
		return w.evalUntil(f, minFloat)
	case formula.KindEU:
		return w.evalUntil(f, maxFloat)
	case formula.KindAW:
		return w.evalWeakUntil(f, formula.AG(f.Left), formula.AU(f.Left, f.Right))
	case formula.KindEW:
		return w.evalWeakUntil(f, formula.EG(f.Left), formula.EU(f.Left, f.Right))
	default:
		return ErrUnknownKind
	}
}

func (w *walker) evalAtomic(f *formula.Formula) error {
	box, err := formula.YieldDov(f, w.ambient, w.maxValues, w.varIndex)
	if err != nil {
		if errors.Is(err, dov.ErrUnsupportedOperator) {
			return fmt.Errorf("%w: %w", ErrUnsupportedOperator, err)
		}

		return err
	}
	key := formula.Key(f)
	for _, s := range w.states {
		score, err := satisfaction.Score(box, w.values[s], w.maxValues, w.opts.KernelOptions...)
		if err != nil {
			return err
		}
		if err := w.table.Set(key, s, score); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) evalBoolean(f *formula.Formula) error {
	score := -1.0
	if f.BoolValue {
		score = 1.0
	}
	key := formula.Key(f)
	for _, s := range w.states {
		if err := w.table.Set(key, s, score); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) evalLattice(f *formula.Formula, combine func(a, b float64) float64) error {
	left, err := w.table.Row(formula.Key(f.Left))
	if err != nil {
		return err
	}
	right, err := w.table.Row(formula.Key(f.Right))
	if err != nil {
		return err
	}
	key := formula.Key(f)
	for i, s := range w.states {
		if err := w.table.Set(key, s, combine(left[i], right[i])); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) evalNext(f *formula.Formula, combine func(a, b float64) float64) error {
	operandKey := formula.Key(f.Left)
	key := formula.Key(f)
	for _, s := range w.states {
		succs, err := w.graph.Successors(s)
		if err != nil {
			return err
		}
		agg, err := aggregate(succs, combine, func(s2 string) (float64, error) {
			return w.getScore(operandKey, s2)
		})
		if err != nil {
			return err
		}
		if err := w.table.Set(key, s, agg); err != nil {
			return err
		}
	}

	return nil
}

// getScore reads a previously-computed score out of the table and requires
// it to be present: a parent node must never see a neutral/zero value for
// an operand that was never scored, so a missing cell aborts evaluation
// with ErrMissingSubformulaScore rather than propagating silently (NaN
// compares false against everything, so minFloat/maxFloat would otherwise
// quietly keep the *other* operand and mask the bug).
func (w *walker) getScore(key, state string) (float64, error) {
	v, ok, err := w.table.Get(key, state)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: %q at state %q", ErrMissingSubformulaScore, key, state)
	}

	return v, nil
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}

// aggregate folds combine over fn(id) for every id in ids. combine must be
// associative and commutative (min or max); ids must be non-empty.
func aggregate(ids []string, combine func(a, b float64) float64, fn func(string) (float64, error)) (float64, error) {
	first, err := fn(ids[0])
	if err != nil {
		return 0, err
	}
	acc := first
	for _, id := range ids[1:] {
		v, err := fn(id)
		if err != nil {
			return 0, err
		}
		acc = combine(acc, v)
	}

	return acc, nil
}
