// Package stats accumulates verbose reporting statistics across a
// generation run: degree histogram, face-size histogram, automorphism
// group-size distribution, and an optional Floyd-Warshall diameter,
// matching spec.md §6's `-v` flag.
//
// Reporter never fails the generation loop (spec.md §7): Record logs and
// swallows its own internal errors rather than propagating them upward,
// the same policy the teacher's matrix package leaves to its callers but
// that this package enforces itself since the scanner must never abort a
// search over a reporting glitch.
//
// Adapted from matrix/impl_statistics.go (histogram-style column/row
// reductions) and matrix/impl_floydwarshall.go (fixed k->i->j loop order,
// in-place distance closure) - lowered here from dense float64 matrices
// over real-valued data to int32 distances over an unweighted planar
// embedding's adjacency.
package stats
