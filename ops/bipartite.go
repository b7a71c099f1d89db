// File: bipartite.go
// Role: Batagelj's P/Q operators for Eulerian (properly 2-colourable)
// triangulations (spec.md §4.3 "Bipartite"), recursed from the
// octahedron. Plain single-vertex fan insertion cannot preserve the
// 2-colouring (a new vertex adjacent to both an apex and that apex's
// same-colour rim would need two different colours at once), so both
// operators insert a joined PAIR of new vertices instead, one attached to
// each side of the bipartition, mirroring the two-vertex gadget
// mindeg5.go uses for B.

package ops

import "github.com/katalvlaran/planargen/core"

// FindExtensionsP enumerates P's sites: one candidate face per
// automorphism orbit.
func FindExtensionsP(p *core.Pool) ([]core.HalfEdgeID, error) {
	var cand []core.HalfEdgeID
	for _, f := range p.Faces() {
		if f.Size == 3 {
			cand = append(cand, f.Start)
		}
	}
	return dedupeByOrbit(p, uniformColour(p), cand)
}

// ExpandP splits off two of the three corners of the face bounded by site
// (a->b, with third corner c = End(FaceNext(site))) using
// insertCornerVertex twice, then joins the two new vertices directly.
// Each new vertex sits opposite a different original corner and is
// adjacent to the other two original corners plus its new partner,
// keeping the bipartition's parity: x and y fall on the opposite side
// from whichever original corner they are not adjacent to.
//
// Complexity: O(1).
func ExpandP(p *core.Pool, site core.HalfEdgeID) (x, y core.VertexID, err error) {
	e2 := p.FaceNext(site)

	var xa, xc core.HalfEdgeID
	if x, xa, xc, err = insertCornerVertex(p, site); err != nil {
		return core.NilVertex, core.NilVertex, err
	}
	var yb, yc core.HalfEdgeID
	if y, yb, yc, err = insertCornerVertex(p, e2); err != nil {
		return core.NilVertex, core.NilVertex, err
	}
	_ = xa

	xy, yx, err := p.AllocPair(x, y)
	if err != nil {
		return core.NilVertex, core.NilVertex, opsErrorf("ExpandP", "allocating x-y edge", ErrCapacity)
	}
	p.SpliceIn(xc, xy)
	p.SpliceIn(yb, yx)
	_ = yc

	return x, y, nil
}

// ReduceP is ExpandP's exact local inverse, given the pair it produced.
func ReduceP(p *core.Pool, x, y core.VertexID) error {
	for _, v := range []core.VertexID{x, y} {
		rot := p.Rotation(v)
		for _, h := range rot {
			inv := p.Twin(h)
			p.SpliceOut(h)
			p.SpliceOut(inv)
			if err := p.FreeEdgePair(h); err != nil {
				return opsErrorf("ReduceP", "freeing edge of vertex %d", err, v)
			}
		}
		if err := p.FreeVertex(v); err != nil {
			return opsErrorf("ReduceP", "freeing vertex %d", err, v)
		}
	}
	return nil
}

// LegalP reports whether ref is a canonical-construction-path parent
// among P's current candidates.
func LegalP(p *core.Pool, ref core.HalfEdgeID) (bool, error) {
	cand, err := FindExtensionsP(p)
	if err != nil {
		return false, opsErrorf("LegalP", "enumerating candidates", err)
	}
	return canonEdgeOf(p, ref, cand)
}

// FindExtensionsQ enumerates Q's sites: edges whose two endpoints are
// both of degree >= 4, the floor Q's heavier gadget needs.
func FindExtensionsQ(p *core.Pool) ([]core.HalfEdgeID, error) {
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
			if p.Degree(p.End(h)) >= 4 && p.Min(h) == h {
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

// ExpandQ replaces the edge at site with the same two-new-vertex gadget
// mindeg5.go's ExpandB uses, reusing its construction directly: Q differs
// from P only in the floor FindExtensionsQ enforces on its endpoints.
func ExpandQ(p *core.Pool, site core.HalfEdgeID) (x, y core.VertexID, err error) {
	return ExpandB(p, site)
}

// ReduceQ undoes ExpandQ.
func ReduceQ(p *core.Pool, x, y core.VertexID) error { return ReduceB(p, x, y) }

// LegalQ reports whether ref is a canonical-construction-path parent
// among Q's current candidates.
func LegalQ(p *core.Pool, ref core.HalfEdgeID) (bool, error) {
	cand, err := FindExtensionsQ(p)
	if err != nil {
		return false, opsErrorf("LegalQ", "enumerating candidates", err)
	}
	return canonEdgeOf(p, ref, cand)
}
