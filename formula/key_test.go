package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ctlquant/dov"
	"github.com/katalvlaran/ctlquant/formula"
)

func TestKey_Atomic(t *testing.T) {
	f := formula.AtomicProp("x", dov.GE, 2)
	assert.Equal(t, "(x >= 2)", formula.Key(f))
}

func TestKey_StructurallyEqualSubformulaeMatch(t *testing.T) {
	a := formula.Conjunction(formula.AtomicProp("x", dov.GE, 2), formula.AtomicProp("y", dov.LE, 0))
	b := formula.Conjunction(formula.AtomicProp("x", dov.GE, 2), formula.AtomicProp("y", dov.LE, 0))
	assert.Equal(t, formula.Key(a), formula.Key(b))
}

func TestKey_TemporalOperators(t *testing.T) {
	x := formula.AtomicProp("x", dov.GE, 1)
	y := formula.AtomicProp("y", dov.LE, 1)

	assert.Equal(t, "AG ((x >= 1))", formula.Key(formula.AG(x)))
	assert.Equal(t, "EG ((x >= 1))", formula.Key(formula.EG(x)))
	assert.Equal(t, "AF ((x >= 1))", formula.Key(formula.AF(x)))
	assert.Equal(t, "EF ((x >= 1))", formula.Key(formula.EF(x)))
	assert.Equal(t, "AX ((x >= 1))", formula.Key(formula.AX(x)))
	assert.Equal(t, "EX ((x >= 1))", formula.Key(formula.EX(x)))
	assert.Equal(t, "A ((x >= 1)) U ((y <= 1))", formula.Key(formula.AU(x, y)))
	assert.Equal(t, "E ((x >= 1)) U ((y <= 1))", formula.Key(formula.EU(x, y)))
	assert.Equal(t, "A ((x >= 1)) W ((y <= 1))", formula.Key(formula.AW(x, y)))
	assert.Equal(t, "E ((x >= 1)) W ((y <= 1))", formula.Key(formula.EW(x, y)))
}

func TestKey_Boolean(t *testing.T) {
	assert.Equal(t, "True", formula.Key(formula.Boolean(true)))
	assert.Equal(t, "False", formula.Key(formula.Boolean(false)))
}
