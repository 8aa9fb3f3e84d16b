// Package satisfaction computes quantitative CTL's atomic satisfaction
// degree: a real number in [-1, 1] whose sign is the classical Boolean
// verdict and whose magnitude is a robustness margin.
//
// What
//
//   - WeightedSignedDistance(box, state, maxValues) measures how far a state
//     sits from a Domain of Validity: zero when inside, a negative,
//     weighted sum of per-axis distances when outside.
//   - FindExtremeState(box, maxValues, positiveSide) finds the corner of
//     the ambient state space with the largest-magnitude weighted signed
//     distance, used to normalise a raw distance into [-1, 1].
//   - Score combines both into the public entry point atomic formulae call.
//
// Why
//
//	These are kept as two pure functions (per spec §4.2: "implementations
//	must route steps 1-4 through two pure functions... so the kernel is
//	unit-testable without a graph") rather than methods with graph access,
//	mirroring dtw.DTW's separation of the pure DP recurrence from any
//	caller-owned sequence storage.
package satisfaction
