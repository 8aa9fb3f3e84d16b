// Package dov implements the Domain-of-Validity engine: the axis-aligned
// integer region of a state space that satisfies an atomic CTL constraint.
//
// What
//
//   - Box is an n-dimensional region represented as one sorted, deduplicated
//     integer Axis per variable: Box[i] ⊆ {0,...,max_i}. A state s is inside
//     a Box iff s[i] ∈ Box[i] for every axis i.
//   - AtomicBox restricts a single axis of an ambient Box to a half-open
//     threshold (>= k or <= k); all other axes pass through unchanged.
//   - Intersect/Union combine two Boxes per axis (set intersection/union),
//     realising the atomic-level Intersection/Union formula variants.
//
// Non-convex axes
//
//	An Axis is a genuine integer set, not merely an interval: Union of two
//	disjoint ranges on the same axis (e.g. "x<=0" unioned with "x>=3") yields
//	a non-contiguous set, exactly as the source representation does. Box
//	itself stays axis-aligned and "rectangular" across axes (it is always a
//	Cartesian product of per-axis sets) — so a Box formed by unioning two
//	genuinely disjoint multi-axis regions is an over-approximation (the
//	bounding region) of their true union, never an exact non-convex region
//	in more than one axis at a time. This is intentional: package
//	satisfaction's nearest-corner search (weighted signed distance) requires
//	each axis to be a well-defined membership set, and the geometry to stay
//	a Cartesian product so "extreme corner" is well-defined per axis
//	independently.
//
// Empty axes
//
//	An axis constrained by an unsatisfiable threshold (e.g. "x >= 5" with
//	max_x == 2) yields an empty Axis. Box membership on that axis is then
//	always false; package satisfaction treats an empty Axis as maximally
//	outside (see satisfaction.WeightedSignedDistance).
package dov
