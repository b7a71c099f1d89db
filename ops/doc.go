// Package ops implements the expand/reduce operator pairs that drive
// every class's recursion (spec.md §4.3, §4.4): each file covers one
// class family and exports an Expand/Reduce pair, a FindExtensions site
// enumerator, and a *Legal reduction-edge ranking function consumed by the
// canonical-construction-path pruning test in canon.CanonEdge.
//
// Shared shape across families:
//   - Expand allocates the operator's new vertices (AllocVertex: one for
//     most operators, several for B, C, P, Q, S, P2 and P3, none for the
//     edge-only ExpandPolytope) and one or more new edge pairs
//     (AllocPair), spliced into the existing
//     rotation with core.SpliceIn; Reduce is its exact local inverse,
//     restoring the rotation with core.SpliceOut and freeing the
//     allocations (core.FreeEdgePair, core.FreeVertex).
//   - FindExtensions never enumerates every half-edge: it asks
//     canon.FromResult for one numbering row per automorphism and keeps
//     only the sites whose orbit representative is canonical, so two
//     isomorphic children are never both produced from the same parent
//     (spec.md §4.4 "orbit-based site enumeration").
//   - *Legal reports which already-reduced edges are valid canonical-
//     construction-path parents for the child just produced, which
//     Scanner feeds straight into canon.CanonEdge/CanonEdgeOriented.
package ops
