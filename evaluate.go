package ctlquant

import (
	"errors"

	"github.com/katalvlaran/ctlquant/evaluator"
	"github.com/katalvlaran/ctlquant/formula"
	"github.com/katalvlaran/ctlquant/kripkegraph"
	"github.com/katalvlaran/ctlquant/resulttable"
)

// ErrGraphNil is returned when Evaluate is given a nil graph.
var ErrGraphNil = errors.New("ctlquant: graph is nil")

// Evaluate validates g's no-sink invariant, then scores root and every
// subformula it contains at every state of g. opts are forwarded to
// evaluator.Evaluate unchanged.
func Evaluate(root *formula.Formula, g *kripkegraph.Graph, opts ...evaluator.Option) (*resulttable.Table, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return evaluator.Evaluate(root, newGraphAdapter(g), opts...)
}
