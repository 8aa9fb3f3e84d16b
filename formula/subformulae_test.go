package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ctlquant/dov"
	"github.com/katalvlaran/ctlquant/formula"
)

func TestSubformulae_AtomicLeafIsIndivisible(t *testing.T) {
	f := formula.UnionOf(formula.AtomicProp("x", dov.GE, 2), formula.AtomicProp("y", dov.LE, 0))
	subs, err := formula.Subformulae(f)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Same(t, f, subs[0])
}

func TestSubformulae_PostOrder(t *testing.T) {
	x := formula.AtomicProp("x", dov.GE, 2)
	y := formula.AtomicProp("y", dov.LE, 0)
	conj := formula.Conjunction(x, y)
	ag := formula.AG(conj)

	subs, err := formula.Subformulae(ag)
	require.NoError(t, err)
	require.Len(t, subs, 4)
	assert.Equal(t, formula.Key(x), formula.Key(subs[0]))
	assert.Equal(t, formula.Key(y), formula.Key(subs[1]))
	assert.Equal(t, formula.Key(conj), formula.Key(subs[2]))
	assert.Equal(t, formula.Key(ag), formula.Key(subs[3]))
}

func TestSubformulae_BinaryTemporal(t *testing.T) {
	x := formula.AtomicProp("x", dov.GE, 1)
	y := formula.AtomicProp("y", dov.LE, 1)
	au := formula.AU(x, y)

	subs, err := formula.Subformulae(au)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, formula.Key(au), formula.Key(subs[len(subs)-1]))
}

func TestSubformulae_NegationNotEliminatedErrors(t *testing.T) {
	f := formula.AG(formula.Negation(formula.AtomicProp("x", dov.GE, 2)))
	_, err := formula.Subformulae(f)
	assert.ErrorIs(t, err, formula.ErrNegationNotEliminated)
}
