// File: polytope.go
// Role: the edge-insertion/deletion operator for 3-connected simple
// planar graphs (spec.md §4.3 "Polytopes"), recursed from K4.
//
// Polytopes need no new vertices at all: every expansion just adds a
// diagonal to an existing face, and the matching reduction deletes an
// edge back out, using connectivity.KConnected as the floor that keeps
// every intermediate graph a valid (3-connected, simple) polytope skeleton
// (spec.md §4.7 "connectivity floor"; SPEC_FULL.md's "edge-deletion
// reverse scan").
//
// The reverse scan runs deletion as its forward step: FindDeletableEdges
// enumerates existing edges to remove, ReducePolytope removes one, and
// LegalPolytope/LegalGeneral then test the ALREADY-SMALLER graph, exactly
// mirroring how every growing operator tests legality on the graph
// Expand just produced (here, Reduce plays that role instead).

package ops

import (
	"github.com/katalvlaran/planargen/connectivity"
	"github.com/katalvlaran/planargen/core"
)

// FindExtensionsPolytope enumerates one candidate diagonal per
// automorphism orbit: for every face of size >= 4, the half-edge site
// names the new edge Start(site) -> End(FaceNext(site)), skipping one
// corner. Used both as the forward insertion operator and, inside
// LegalPolytope, as the candidate set a just-deleted edge's re-insertion
// site is ranked against.
func FindExtensionsPolytope(p *core.Pool) ([]core.HalfEdgeID, error) {
	var cand []core.HalfEdgeID
	for _, f := range p.Faces() {
		if f.Size < 4 {
			continue
		}
		h := f.Start
		for i := 0; i < f.Size; i++ {
			a := p.Start(h)
			c := p.End(p.FaceNext(h))
			if a != c && edgeBetween(p, a, c) == core.NilHalfEdge {
				cand = append(cand, h)
			}
			h = p.FaceNext(h)
		}
	}
	return dedupeByOrbit(p, uniformColour(p), cand)
}

// FindDeletableEdges enumerates one candidate deletion edge per orbit:
// existing edges whose endpoints both have degree >= 4 before removal, so
// both keep degree >= 3 after it, the precondition that lets a polytope
// skeleton's minimum-degree floor survive the deletion.
func FindDeletableEdges(p *core.Pool) ([]core.HalfEdgeID, error) {
	var cand []core.HalfEdgeID
	n := int(p.Order())
	for v := 0; v < n; v++ {
		u := core.VertexID(v)
		if p.Degree(u) < 4 {
			continue
		}
		first := p.FirstEdge(u)
		if first == core.NilHalfEdge {
			continue
		}
		for h := first; ; {
			if p.Min(h) == h && p.Degree(p.End(h)) >= 4 {
				cand = append(cand, h)
			}
			h = p.Next(h)
			if h == first {
				break
			}
		}
	}
	return dedupeByOrbit(p, uniformColour(p), cand)
}

// ExpandPolytope adds the diagonal named by site, splitting its
// enclosing face into two smaller faces. Returns the new half-edge
// a->c, the handle ReducePolytope needs to undo it.
//
// Complexity: O(1).
func ExpandPolytope(p *core.Pool, site core.HalfEdgeID) (core.HalfEdgeID, error) {
	e1 := p.FaceNext(site)
	a := p.Start(site)
	c := p.End(e1)

	ac, ca, err := p.AllocPair(a, c)
	if err != nil {
		return core.NilHalfEdge, opsErrorf("ExpandPolytope", "allocating diagonal", ErrCapacity)
	}
	p.SpliceIn(site, ac)
	p.SpliceIn(e1, ca)
	return ac, nil
}

// ReducePolytope removes edge, merging the two faces it bounds back into
// one. edge must be a prior ExpandPolytope's return value (or its twin),
// or any existing edge named by FindDeletableEdges.
func ReducePolytope(p *core.Pool, edge core.HalfEdgeID) error {
	inv := p.Twin(edge)
	p.SpliceOut(edge)
	p.SpliceOut(inv)
	if err := p.FreeEdgePair(edge); err != nil {
		return opsErrorf("ReducePolytope", "freeing diagonal", err)
	}
	return nil
}

// LegalPolytope reports whether, on the graph p with the candidate edge
// already removed, re-inserting it at site (the face-corner half-edge
// spanning the merged face at its former endpoints) would be the
// canonical choice among FindExtensionsPolytope's current candidates, and
// whether p still meets the 3-connectivity floor.
func LegalPolytope(p *core.Pool, site core.HalfEdgeID) (bool, error) {
	return legalEdgeDeletion(p, site, 3)
}

// LegalGeneral is LegalPolytope without the connectivity floor: the
// General class (spec.md §2 "simple planar graphs without a connectivity
// floor") reuses the same edge-deletion reverse scan, dropping only the
// connectivity.KConnected check.
func LegalGeneral(p *core.Pool, site core.HalfEdgeID) (bool, error) {
	return legalEdgeDeletion(p, site, 0)
}

// legalEdgeDeletion is LegalPolytope/LegalGeneral's shared body,
// parametrised by the vertex-connectivity floor k (0 disables the
// connectivity probe entirely). p is already the smaller, post-deletion
// graph; site is where ExpandPolytope would redo the deletion.
func legalEdgeDeletion(p *core.Pool, site core.HalfEdgeID, k int) (bool, error) {
	cand, err := FindExtensionsPolytope(p)
	if err != nil {
		return false, opsErrorf("legalEdgeDeletion", "enumerating candidates", err)
	}
	ok, err := canonEdgeOf(p, site, cand)
	if err != nil || !ok {
		return ok, err
	}
	if k <= 0 {
		return true, nil
	}
	connected, err := connectivity.KConnected(p, k)
	if err != nil {
		return false, opsErrorf("legalEdgeDeletion", "checking connectivity floor", err)
	}
	return connected, nil
}
