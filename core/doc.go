// Package core implements the rotation-system half-edge representation that
// every generator in planargen mutates in place: a doubly linked oriented
// edge model that fixes a planar embedding on the sphere and supports O(1)
// local surgery and O(1) traversal of face and vertex cycles.
//
// # Data model
//
// Each undirected edge of the current graph is a pair of half-edges
// (HalfEdge), one per direction. For a half-edge e:
//
//	Start(e), End(e)   - endpoint vertex indices, 0..n-1
//	Next(e), Prev(e)   - clockwise successor/predecessor around Start(e);
//	                     Next alone fixes the rotation system / embedding
//	Twin(e)            - the opposite half-edge of the same undirected edge
//	Min(e)             - canonical representative of {e, Twin(e)}, used to
//	                     iterate undirected edges without duplication
//	Mark/Index/Scratch - ephemeral fields owned by whichever algorithm runs;
//	                     undefined between top-level operations
//
// # Lifecycle
//
// A Pool is sized once, at construction, to hold enough half-edges for the
// largest graph the caller's search tree will reach (NewPool(maxOrder)).
// Inside a generation recursion the graph is mutated in place: operator
// Expand funcs reserve a fresh half-edge pair via AllocPair/AllocVertex and
// splice them into the rotation; the paired Reduce undoes exactly those
// splices so pointer state (Next/Prev/Twin/Min), modulo FirstEdge, is
// restored bit-for-bit (see the round-trip tests in core_test.go and
// diagonal_test.go). No half-edge is ever aliased between two Pools, and no
// allocation happens once the pool is sized (see NewPool's capacity note).
//
// # Invariants
//
// Verify (called only from tests and debug builds, never from the hot
// recursion) checks:
//
//	Next(Prev(e)) == e, Prev(Next(e)) == e, Twin(Twin(e)) == e
//	Start(Twin(e)) == End(e)
//	Min(e) == Min(Twin(e)), exactly one of {e, Twin(e)} equals Min(e)
//	the cyclic list anchored at FirstEdge(v) has length Degree(v)
//	n - m + f == 2 (Euler), computed by walking face cycles
//
// # Concurrency
//
// Per the generator's single-threaded design (no suspension points, no
// inter-procedure handoff of the pool mid-mutation), Pool carries no locks:
// it is owned exclusively by whichever scanner activation currently holds
// it. This is a deliberate departure from lvlath's core.Graph, which guards
// vertices/edges with separate sync.RWMutex locks so arbitrary goroutines
// can mutate concurrently - a guarantee this package does not need and does
// not want to pay for on the hot path. The two genuinely independent,
// swappable collaborators that sit outside the recursion (simplegraph,
// stats) keep that locked style instead; see their doc.go files.
package core
