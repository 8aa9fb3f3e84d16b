package ctlquant

import (
	"github.com/katalvlaran/ctlquant/evaluator"
	"github.com/katalvlaran/ctlquant/kripkegraph"
)

// graphAdapter satisfies evaluator.Graph by delegating to a
// *kripkegraph.Graph and converting its kripkegraph.State values to and
// from the plain strings evaluator.Graph deals in. kripkegraph stays free
// of any evaluator-shaped methods; evaluator stays free of any
// kripkegraph import — this is the only file that converts between the two.
type graphAdapter struct {
	g *kripkegraph.Graph
}

func newGraphAdapter(g *kripkegraph.Graph) *graphAdapter {
	return &graphAdapter{g: g}
}

func (a *graphAdapter) Variables() []evaluator.Variable {
	vars := a.g.Variables()
	out := make([]evaluator.Variable, len(vars))
	for i, v := range vars {
		out[i] = evaluator.Variable{Name: v.Name, Max: v.Max}
	}

	return out
}

func (a *graphAdapter) States() []string {
	states := a.g.States()
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}

	return out
}

func (a *graphAdapter) StateValues(state string) ([]int, error) {
	return kripkegraph.State(state).Values(), nil
}

func (a *graphAdapter) Successors(state string) ([]string, error) {
	succ, err := a.g.Successors(kripkegraph.State(state))
	if err != nil {
		return nil, err
	}

	return statesToStrings(succ), nil
}

func (a *graphAdapter) Predecessors(state string) ([]string, error) {
	pred, err := a.g.Predecessors(kripkegraph.State(state))
	if err != nil {
		return nil, err
	}

	return statesToStrings(pred), nil
}

func statesToStrings(states []kripkegraph.State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}

	return out
}
