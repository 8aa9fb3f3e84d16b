package kripkegraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ctlquant/kripkegraph"
)

func seedGraph(t *testing.T) *kripkegraph.Graph {
	t.Helper()
	g, err := kripkegraph.NewGraph(kripkegraph.Variable{Name: "x", Max: 2})
	require.NoError(t, err)
	require.NoError(t, g.AddTransition([]int{0}, []int{1}))
	require.NoError(t, g.AddTransition([]int{1}, []int{2}))
	require.NoError(t, g.AddTransition([]int{2}, []int{2}))

	return g
}

func TestNewGraph_Validation(t *testing.T) {
	_, err := kripkegraph.NewGraph()
	assert.ErrorIs(t, err, kripkegraph.ErrEmptyVariables)

	_, err = kripkegraph.NewGraph(kripkegraph.Variable{Name: "x", Max: -1})
	assert.ErrorIs(t, err, kripkegraph.ErrNegativeMax)

	_, err = kripkegraph.NewGraph(
		kripkegraph.Variable{Name: "x", Max: 1},
		kripkegraph.Variable{Name: "x", Max: 2},
	)
	assert.ErrorIs(t, err, kripkegraph.ErrDuplicateVariable)
}

func TestAddState_RangeChecks(t *testing.T) {
	g, err := kripkegraph.NewGraph(kripkegraph.Variable{Name: "x", Max: 2})
	require.NoError(t, err)

	_, err = g.AddState([]int{0, 0})
	assert.ErrorIs(t, err, kripkegraph.ErrArityMismatch)

	_, err = g.AddState([]int{3})
	assert.ErrorIs(t, err, kripkegraph.ErrOutOfRangeCoordinate)

	s1, err := g.AddState([]int{2})
	require.NoError(t, err)
	s2, err := g.AddState([]int{2})
	require.NoError(t, err)
	assert.Equal(t, s1, s2, "AddState must be idempotent for identical coordinates")
}

func TestSuccessorsPredecessors(t *testing.T) {
	g := seedGraph(t)
	s0, _ := g.AddState([]int{0})
	s1, _ := g.AddState([]int{1})
	s2, _ := g.AddState([]int{2})

	succ0, err := g.Successors(s0)
	require.NoError(t, err)
	assert.Equal(t, []kripkegraph.State{s1}, succ0)

	succ2, err := g.Successors(s2)
	require.NoError(t, err)
	assert.Equal(t, []kripkegraph.State{s2}, succ2, "self-loop at the terminal state")

	pred2, err := g.Predecessors(s2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []kripkegraph.State{s1, s2}, pred2)

	_, err = g.Successors("not-a-state")
	assert.ErrorIs(t, err, kripkegraph.ErrStateNotFound)
}

func TestValidate_SinkState(t *testing.T) {
	g, err := kripkegraph.NewGraph(kripkegraph.Variable{Name: "x", Max: 1})
	require.NoError(t, err)
	_, err = g.AddState([]int{0}) // no outgoing transition added
	require.NoError(t, err)

	err = g.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kripkegraph.ErrSinkState))

	var sinkErr *kripkegraph.SinkStateError
	require.ErrorAs(t, err, &sinkErr)
}

func TestValidate_NoSinks(t *testing.T) {
	g := seedGraph(t)
	assert.NoError(t, g.Validate())
}

func TestStateValuesRoundTrip(t *testing.T) {
	g, err := kripkegraph.NewGraph(
		kripkegraph.Variable{Name: "x", Max: 2},
		kripkegraph.Variable{Name: "y", Max: 2},
	)
	require.NoError(t, err)
	s, err := g.AddState([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, s.Values())
	assert.Equal(t, "(1, 2)", s.String())
}

func TestMaxValuesAndVariables(t *testing.T) {
	g := seedGraph(t)
	assert.Equal(t, []int{2}, g.MaxValues())
	vars := g.Variables()
	require.Len(t, vars, 1)
	assert.Equal(t, "x", vars[0].Name)
}

func TestID_UniquePerGraph(t *testing.T) {
	g1, err := kripkegraph.NewGraph(kripkegraph.Variable{Name: "x", Max: 1})
	require.NoError(t, err)
	g2, err := kripkegraph.NewGraph(kripkegraph.Variable{Name: "x", Max: 1})
	require.NoError(t, err)

	assert.NotEqual(t, g1.ID(), g2.ID())
	assert.Equal(t, g1.ID(), g1.ID(), "ID is stable across calls")
}
