// File: mindeg4.go
// Role: four/five/S, the expansion operators for minimum-degree-4
// triangulations (spec.md §4.3 "Minimum degree 4"), recursed from the
// octahedron.

package ops

import "github.com/katalvlaran/planargen/core"

// Four inserts a degree-4 vertex exactly as ExpandE4 does; the minimum-
// degree-4 floor never binds here because a fan of width 4 changes its
// apex's degree by exactly 4-k = 0 (see shared.go's file doc).
func FindExtensionsFour(p *core.Pool) ([]core.HalfEdgeID, error) {
	return dedupeByOrbit(p, uniformColour(p), fanCandidates(p, 4))
}

// ExpandFour inserts a degree-4 vertex at site.
func ExpandFour(p *core.Pool, site core.HalfEdgeID) (core.VertexID, error) {
	z, _, err := ExpandFan(p, site, 4)
	return z, err
}

// ReduceFour undoes ExpandFour.
func ReduceFour(p *core.Pool, z core.VertexID) error { return ReduceFan(p, z) }

// LegalFour reports whether ref is a canonical-construction-path parent
// among Four's current candidates.
func LegalFour(p *core.Pool, ref core.HalfEdgeID) (bool, error) {
	cand, err := FindExtensionsFour(p)
	if err != nil {
		return false, opsErrorf("LegalFour", "enumerating candidates", err)
	}
	return canonEdgeOf(p, ref, cand)
}

// FindExtensionsFive enumerates Five's sites: a fan of width 5 whose apex
// has degree >= 5 before the operator runs, since the apex's degree drops
// by 4-k = -1 and must stay >= 4 afterwards.
func FindExtensionsFive(p *core.Pool) ([]core.HalfEdgeID, error) {
	all := fanCandidates(p, 5)
	var ok []core.HalfEdgeID
	for _, h := range all {
		if p.Degree(p.Start(h)) >= 5 {
			ok = append(ok, h)
		}
	}
	return dedupeByOrbit(p, uniformColour(p), ok)
}

// ExpandFive inserts a degree-5 vertex at site.
func ExpandFive(p *core.Pool, site core.HalfEdgeID) (core.VertexID, error) {
	z, _, err := ExpandFan(p, site, 5)
	return z, err
}

// ReduceFive undoes ExpandFive.
func ReduceFive(p *core.Pool, z core.VertexID) error { return ReduceFan(p, z) }

// LegalFive reports whether ref is a canonical-construction-path parent
// among Five's current candidates.
func LegalFive(p *core.Pool, ref core.HalfEdgeID) (bool, error) {
	cand, err := FindExtensionsFive(p)
	if err != nil {
		return false, opsErrorf("LegalFive", "enumerating candidates", err)
	}
	return canonEdgeOf(p, ref, cand)
}

// FindExtensionsS enumerates one candidate face per automorphism orbit:
// S's site is any half-edge bounding a triangular face, since the operator
// always carves the same three-corner structure out of one face
// regardless of which boundary edge names it.
func FindExtensionsS(p *core.Pool) ([]core.HalfEdgeID, error) {
	var cand []core.HalfEdgeID
	for _, f := range p.Faces() {
		if f.Size == 3 {
			cand = append(cand, f.Start)
		}
	}
	return dedupeByOrbit(p, uniformColour(p), cand)
}

// insertCornerVertex splits off the triangle bounded by faceEdge (X->Y)
// and a fresh degree-2 vertex q adjacent to X and Y, leaving q's two new
// edges on the inside of faceEdge's enclosing face. Returns q and its two
// half-edges (toX, toY), already spliced at X and Y; q's own rotation is
// [toY, toX], so the wraparound gap (the face side still to be subdivided
// further) sits immediately before toY.
func insertCornerVertex(p *core.Pool, faceEdge core.HalfEdgeID) (core.VertexID, core.HalfEdgeID, core.HalfEdgeID, error) {
	x := p.Start(faceEdge)
	y := p.End(faceEdge)

	q, err := p.AllocVertex()
	if err != nil {
		return core.NilVertex, core.NilHalfEdge, core.NilHalfEdge, opsErrorf("insertCornerVertex", "allocating vertex", ErrCapacity)
	}

	xq, qx, err := p.AllocPair(x, q)
	if err != nil {
		return core.NilVertex, core.NilHalfEdge, core.NilHalfEdge, opsErrorf("insertCornerVertex", "allocating x-q edge", ErrCapacity)
	}
	p.SpliceIn(faceEdge, xq)

	yq, qy, err := p.AllocPair(y, q)
	if err != nil {
		return core.NilVertex, core.NilHalfEdge, core.NilHalfEdge, opsErrorf("insertCornerVertex", "allocating y-q edge", ErrCapacity)
	}
	p.SpliceInAfter(p.Twin(faceEdge), yq)

	p.SpliceFirst(qy)
	p.SpliceInAfter(qy, qx)

	return q, qx, qy, nil
}

// ExpandS carves the triangle bounded by site (a->b) into three corner
// triangles plus a central hexagon, then fan-triangulates the hexagon from
// an inner triangle, producing three new degree-4 vertices (spec.md §4.3
// "S (insert a triangle of three new degree-4 vertices into a triangular
// face)"). p3 is adjacent to {a,b}, p1 to {b,c}, p2 to {c,a}, where c is
// the face's third corner (End(FaceNext(site))).
//
// Complexity: O(1).
func ExpandS(p *core.Pool, site core.HalfEdgeID) (p1, p2, p3 core.VertexID, err error) {
	e2 := p.FaceNext(site)
	e3 := p.FaceNext(e2)

	var p3a, p3b, p1b, p1c, p2c, p2a core.HalfEdgeID
	if p3, p3a, p3b, err = insertCornerVertex(p, site); err != nil {
		return core.NilVertex, core.NilVertex, core.NilVertex, err
	}
	if p1, p1b, p1c, err = insertCornerVertex(p, e2); err != nil {
		return core.NilVertex, core.NilVertex, core.NilVertex, err
	}
	if p2, p2c, p2a, err = insertCornerVertex(p, e3); err != nil {
		return core.NilVertex, core.NilVertex, core.NilVertex, err
	}
	_, _, _ = p3a, p1b, p2c // named for documentation symmetry with p3b/p1c/p2a below

	e12, e21, err := p.AllocPair(p1, p2)
	if err != nil {
		return core.NilVertex, core.NilVertex, core.NilVertex, opsErrorf("ExpandS", "allocating inner edge p1-p2", ErrCapacity)
	}
	e23, e32, err := p.AllocPair(p2, p3)
	if err != nil {
		return core.NilVertex, core.NilVertex, core.NilVertex, opsErrorf("ExpandS", "allocating inner edge p2-p3", ErrCapacity)
	}
	e31, e13, err := p.AllocPair(p3, p1)
	if err != nil {
		return core.NilVertex, core.NilVertex, core.NilVertex, opsErrorf("ExpandS", "allocating inner edge p3-p1", ErrCapacity)
	}

	p.SpliceIn(p1c, e13)
	p.SpliceIn(p1c, e12)
	p.SpliceIn(p2a, e21)
	p.SpliceIn(p2a, e23)
	p.SpliceIn(p3b, e32)
	p.SpliceIn(p3b, e31)

	return p1, p2, p3, nil
}

// ReduceS is ExpandS's exact local inverse, given the three vertices it
// produced.
func ReduceS(p *core.Pool, p1, p2, p3 core.VertexID) error {
	for _, v := range []core.VertexID{p1, p2, p3} {
		rot := p.Rotation(v)
		for _, h := range rot {
			inv := p.Twin(h)
			p.SpliceOut(h)
			p.SpliceOut(inv)
			if err := p.FreeEdgePair(h); err != nil {
				return opsErrorf("ReduceS", "freeing edge of vertex %d", err, v)
			}
		}
		if err := p.FreeVertex(v); err != nil {
			return opsErrorf("ReduceS", "freeing vertex %d", err, v)
		}
	}
	return nil
}

// LegalS reports whether ref is a canonical-construction-path parent
// among S's current candidates.
func LegalS(p *core.Pool, ref core.HalfEdgeID) (bool, error) {
	cand, err := FindExtensionsS(p)
	if err != nil {
		return false, opsErrorf("LegalS", "enumerating candidates", err)
	}
	return canonEdgeOf(p, ref, cand)
}
