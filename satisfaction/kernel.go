// File: kernel.go
// Role: the two pure functions spec's satisfaction-degree kernel is built
// from (WeightedSignedDistance, FindExtremeState), plus the Score entry
// point that composes them into a value in [-1, 1].
//
// Both pure functions brute-force each axis independently (n = axis count):
// the weighted signed distance is additively separable across axes
// (Σ_i w_i * δ_i), so the per-axis extreme can be found independently and
// summed. WeightedSignedDistance is O(n * max_v); FindExtremeState is
// O(n * max_v^2), since it evaluates every candidate value of an axis
// against every member of that axis.

package satisfaction

import (
	"math"

	"github.com/katalvlaran/ctlquant/dov"
)

// AxisWeightFunc derives a per-axis weight vector from the per-axis maxima.
// DefaultAxisWeights implements spec's suggested 1/max_v normalisation
// (spec §9 open question 3).
type AxisWeightFunc func(maxValues []int) []float64

// DefaultAxisWeights returns w_i = 1/max_i when max_i > 0, else 1 — so a
// zero-range (fixed) variable never divides by zero.
func DefaultAxisWeights(maxValues []int) []float64 {
	w := make([]float64, len(maxValues))
	for i, m := range maxValues {
		if m > 0 {
			w[i] = 1 / float64(m)
		} else {
			w[i] = 1
		}
	}

	return w
}

// Options configures the axis-weighting strategy used by the kernel.
type Options struct {
	AxisWeightFunc AxisWeightFunc
}

// Option is a functional option over Options.
type Option func(*Options)

// DefaultOptions returns Options using DefaultAxisWeights.
func DefaultOptions() Options {
	return Options{AxisWeightFunc: DefaultAxisWeights}
}

// WithAxisWeightFunc overrides the axis-weighting strategy.
func WithAxisWeightFunc(fn AxisWeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.AxisWeightFunc = fn
		}
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// axisDelta returns the signed per-axis deviation of value v from axis:
// 0 if v is a member of axis; otherwise the negative distance to the
// nearest member. An empty axis (an unsatisfiable atomic constraint) is
// treated as maximally outside: -(maxValue+1), strictly more negative than
// any distance achievable within a non-empty axis of that range.
func axisDelta(axis dov.Axis, v, maxValue int) int {
	if len(axis) == 0 {
		return -(maxValue + 1)
	}
	best := -1
	for _, a := range axis {
		d := v - a
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			best = d
		}
	}
	if best == 0 {
		return 0
	}

	return -best
}

// WeightedSignedDistance computes wsd(s) = Σ_i w_i · δ_i(s_i), the
// spec §4.2 step-1/2 quantity, for state against box. Returns
// ErrArityMismatch if state, box, and maxValues disagree in length.
func WeightedSignedDistance(box dov.Box, state, maxValues []int, opts ...Option) (float64, error) {
	n := len(box)
	if len(state) != n || len(maxValues) != n {
		return 0, ErrArityMismatch
	}
	o := resolveOptions(opts)
	weights := o.AxisWeightFunc(maxValues)

	var sum float64
	for i := 0; i < n; i++ {
		delta := axisDelta(box[i], state[i], maxValues[i])
		sum += weights[i] * float64(delta)
	}

	return sum, nil
}

// FindExtremeState searches the ambient box {0,...,max_i} axis by axis for
// the coordinate tuple extremising wsd against box: the minimum (most
// negative) value when positiveSide is false, the maximum value when
// positiveSide is true (0 whenever every axis of box is non-empty, since δ
// is never positive and a state fully inside box reaches it; an empty axis
// contributes a negative term at every value). Returns the extreme state
// alongside its wsd value. Returns ErrEmptyBox for a zero-axis box,
// ErrArityMismatch if box and maxValues disagree in length.
func FindExtremeState(box dov.Box, maxValues []int, positiveSide bool, opts ...Option) ([]int, float64, error) {
	n := len(box)
	if n == 0 {
		return nil, 0, ErrEmptyBox
	}
	if len(maxValues) != n {
		return nil, 0, ErrArityMismatch
	}
	o := resolveOptions(opts)
	weights := o.AxisWeightFunc(maxValues)

	state := make([]int, n)
	var total float64
	for i := 0; i < n; i++ {
		bestV := 0
		bestContribution := weights[i] * float64(axisDelta(box[i], 0, maxValues[i]))
		for v := 1; v <= maxValues[i]; v++ {
			contribution := weights[i] * float64(axisDelta(box[i], v, maxValues[i]))
			if positiveSide && contribution > bestContribution {
				bestContribution, bestV = contribution, v
			}
			if !positiveSide && contribution < bestContribution {
				bestContribution, bestV = contribution, v
			}
		}
		state[i] = bestV
		total += bestContribution
	}

	return state, total, nil
}

// Score is the top-level satisfaction-degree kernel entry point: it
// computes wsd(s), finds the extremum in the same direction, normalises,
// and clamps to [-1, 1] per spec §4.2 steps 1-4.
func Score(box dov.Box, state, maxValues []int, opts ...Option) (float64, error) {
	wsd, err := WeightedSignedDistance(box, state, maxValues, opts...)
	if err != nil {
		return 0, err
	}
	_, extWSD, err := FindExtremeState(box, maxValues, wsd >= 0, opts...)
	if err != nil {
		return 0, err
	}

	var score float64
	if extWSD == 0 {
		score = 1
	} else {
		score = wsd / math.Abs(extWSD)
	}

	return clamp(score), nil
}

func clamp(score float64) float64 {
	switch {
	case score > 1:
		return 1
	case score < -1:
		return -1
	default:
		return score
	}
}
