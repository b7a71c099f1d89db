// Package scanner drives the recursive search spec.md §4.5 describes: for
// the nine vertex-growing classes, Scanner.Run walks find_extensions ->
// expand -> legality test -> recurse -> reduce down to the target order,
// splitting the tree by res/mod (§4.6) and handing every accepted graph at
// the target order to an emit.Emitter-backed Sink (§4.7).
//
// Polytope and General are not vertex-growing: spec.md §4.3's "Polytope
// phase" reaches the target order first (by running the Triangulation
// scan to completion) and then descends a second, reverse-direction tree
// that deletes edges instead of adding vertices. RunEdgeDeletion
// implements that second phase; see edgedeletion.go for why Expand and
// Reduce trade roles there.
package scanner
