// Package canon implements the canonical-form machinery of spec.md §4.2:
// given a marked starting half-edge and a vertex colouring, it produces a
// canonical string representation of the embedding (Code) and enumerates
// the automorphism group as a list of edge re-numberings (Automorphisms).
// A derived canonical-edge test (CanonEdge / CanonEdgeOriented) decides
// whether the most recent local modification made by an operator is
// "canonical" in the sense of McKay's canonical-construction-path method,
// which is how scanner avoids ever re-deriving a graph it has already
// produced from a different parent.
//
// # Canonical code construction (BuildCode)
//
// A breadth-first traversal in rotation order. Number Start(s) = 1, and (if
// s is not a loop) End(s) = 2. Then, for each already-numbered vertex u in
// order of first numbering, scan the rotation starting at the half-edge
// through which u was first discovered (its "entry edge"): for each
// neighbour, emit the neighbour's number if already seen, or its colour
// (shifted by n, per design note "canonical-code layout", so colour tokens
// never collide with vertex-number tokens) if newly discovered, assigning
// it the next integer. A terminator token separates vertex records.
// Emitting the colour rather than the new number on first sight keeps
// decoding canonical even in the presence of multi-edges.
//
// Two traversal orientations exist: Next-direction (orientation-preserving)
// and Prev-direction (orientation-reversing, "mirror"). BuildCode computes
// either, selected by its mirror argument; Canon computes both.
//
// # Canonical test (Canon)
//
// Given a colouring, Canon:
//  1. Lets D be the minimum colour and v any vertex coloured D (the
//     caller's colouring scheme guarantees one exists: the most recently
//     added vertex carries the minimum colour).
//  2. Restricts to the candidate half-edges starting at a D-coloured vertex
//     whose endpoint attains that start vertex's maximum neighbour colour.
//  3. Computes the lexicographically smallest code produced by any
//     candidate under either orientation, and collects every half-edge
//     that attains it (the automorphism set A, expressed as canonical
//     re-numberings).
//  4. Returns the Next-direction subset and Prev-direction subset of A
//     (AOr, AMir) together with their counts.
//
// # Canonical-edge test (CanonEdge, CanonEdgeOriented)
//
// Same idea, but the caller supplies the candidate set directly - a small
// list of half-edges already known, by local analysis, to be the only
// possibly-canonical reduction edges of the just-performed expansion. The
// test returns true iff the supplied reference half-edge's code is not
// beaten by any other candidate's. CanonEdgeOriented additionally accepts
// separate next-preferred/prev-preferred candidate lists to halve the work
// when the operator's own colouring already distinguishes orientation.
//
// Complexity: each code computation is O(total half-edges); callers keep
// candidate sets small (O(1) in the trivial-group case, O(|Aut|) otherwise).
package canon
