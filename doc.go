// Package topology provides a small, pure-Go algebra for temporal
// projection over piecewise-monotonic 1-D mappings: affine transforms,
// cubic Bézier curves reduced to monotonic pieces, and piecewise-linear
// curves, composed into right-met [topology.Topology] sequences that
// project points forward and backward, trim in either input or output
// space, split at arbitrary ordinates, invert (a topology that is not
// globally monotonic inverts to one topology per monotonic run), and join
// end to end through a shared intermediate space.
//
// 🚀 Why this module?
//
//	Anywhere a pipeline needs to reason about "where did this timestamp (or
//	sample index, or normalized position) end up after N remapping stages",
//	a hand-rolled chain of lookup tables and special-cased boundary checks
//	tends to grow unmaintainable. This module gives that problem one
//	uniform contract — Mapping — with exactly three concrete shapes (Empty,
//	Affine, LinearMonotonic) and one composition rule (Join), so every
//	remapping stage is interchangeable regardless of which shape backs it.
//
// ✨ Package layout:
//   - ordinate:   the scalar coordinate type (Ord) and its tolerant
//     equality.
//   - interval:   the right-open ContinuousInterval every bound is
//     expressed in.
//   - affine:     the one-dimensional affine transform.
//   - projection: the Result sum type every projection query returns.
//   - bezier:     the cubic Bézier toolkit (evaluate, split, inverse
//     evaluation, hodograph-based critical points, adaptive
//     linearization).
//   - linear:     the piecewise-linear curve Bézier segments reduce to.
//   - mapping:    the Mapping contract, its three variants, and Join.
//   - topology:   Topology, the ordered right-met sequence of mappings,
//     and its own Join.
//
// ⚙️ Quick example:
//
//	first, _ := mapping.NewAffine(interval.ContinuousInterval{Start: 0, End: 5}, affine.New(0, 2))
//	second, _ := mapping.NewAffine(interval.ContinuousInterval{Start: 5, End: 10}, affine.New(0, 3))
//	tp, _ := topology.FromMappings([]mapping.Mapping{first, second})
//	y, _ := tp.Project(7).Ordinate() // 21
package topology
