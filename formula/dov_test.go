package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ctlquant/dov"
	"github.com/katalvlaran/ctlquant/formula"
)

func TestYieldDov_AtomicProp(t *testing.T) {
	maxValues := []int{2}
	ambient := dov.Full(maxValues)
	varIndex := map[string]int{"x": 0}

	f := formula.AtomicProp("x", dov.GE, 2)
	box, err := formula.YieldDov(f, ambient, maxValues, varIndex)
	require.NoError(t, err)
	assert.True(t, box.Contains([]int{2}))
	assert.False(t, box.Contains([]int{1}))
}

func TestYieldDov_UnionAndIntersection(t *testing.T) {
	maxValues := []int{3}
	ambient := dov.Full(maxValues)
	varIndex := map[string]int{"x": 0}

	low := formula.AtomicProp("x", dov.LE, 0)
	high := formula.AtomicProp("x", dov.GE, 3)
	union, err := formula.YieldDov(formula.UnionOf(low, high), ambient, maxValues, varIndex)
	require.NoError(t, err)
	assert.True(t, union.Contains([]int{0}))
	assert.True(t, union.Contains([]int{3}))
	assert.False(t, union.Contains([]int{1}))

	both := formula.AtomicProp("x", dov.GE, 1)
	intersection, err := formula.YieldDov(formula.IntersectionOf(high, both), ambient, maxValues, varIndex)
	require.NoError(t, err)
	assert.True(t, intersection.Contains([]int{3}))
	assert.False(t, intersection.Contains([]int{1}))
}

func TestYieldDov_UnknownVariable(t *testing.T) {
	maxValues := []int{2}
	ambient := dov.Full(maxValues)
	_, err := formula.YieldDov(formula.AtomicProp("z", dov.GE, 1), ambient, maxValues, map[string]int{"x": 0})
	assert.ErrorIs(t, err, formula.ErrUnknownVariable)
}

func TestYieldDov_NegationNotEliminatedErrors(t *testing.T) {
	maxValues := []int{2}
	ambient := dov.Full(maxValues)
	f := formula.Negation(formula.AtomicProp("x", dov.GE, 2))
	_, err := formula.YieldDov(f, ambient, maxValues, map[string]int{"x": 0})
	assert.ErrorIs(t, err, formula.ErrNegationNotEliminated)
}

func TestYieldDov_NotAtomicErrors(t *testing.T) {
	maxValues := []int{2}
	ambient := dov.Full(maxValues)
	f := formula.Boolean(true)
	_, err := formula.YieldDov(f, ambient, maxValues, map[string]int{})
	assert.ErrorIs(t, err, formula.ErrNotAtomic)
}
