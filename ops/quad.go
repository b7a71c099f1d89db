// File: quad.go
// Role: P0/P1/P2/P3, the expansion operators for quadrangulations
// (spec.md §4.3 "Quadrangulations"), recursed from the cube
// (3-connected case) or the 4-cycle (general case). All four operators
// are built from insertDiagonalVertex, the quadrangulation analogue of
// triangulation.go's fan insertion: a new vertex spans a face's diagonal
// instead of a fan of spokes, so every face stays a quadrilateral.

package ops

import "github.com/katalvlaran/planargen/core"

// insertDiagonalVertex splits the quadrilateral face bounded by e0 (a->b)
// into two quadrilaterals by inserting a fresh degree-2 vertex z adjacent
// to a and c, where c is the face corner diagonally opposite a
// (End(FaceNext(e0))). Returns z and its two half-edges (toA, toC).
func insertDiagonalVertex(p *core.Pool, e0 core.HalfEdgeID) (core.VertexID, core.HalfEdgeID, core.HalfEdgeID, error) {
	e1 := p.FaceNext(e0) // b -> c
	e2 := p.FaceNext(e1) // c -> d
	e3 := p.FaceNext(e2) // d -> a

	z, err := p.AllocVertex()
	if err != nil {
		return core.NilVertex, core.NilHalfEdge, core.NilHalfEdge, opsErrorf("insertDiagonalVertex", "allocating vertex", ErrCapacity)
	}

	az, za, err := p.AllocPair(p.Start(e0), z)
	if err != nil {
		return core.NilVertex, core.NilHalfEdge, core.NilHalfEdge, opsErrorf("insertDiagonalVertex", "allocating a-z edge", ErrCapacity)
	}
	p.SpliceInAfter(e0, az)

	cz, zc, err := p.AllocPair(p.End(e1), z)
	if err != nil {
		return core.NilVertex, core.NilHalfEdge, core.NilHalfEdge, opsErrorf("insertDiagonalVertex", "allocating c-z edge", ErrCapacity)
	}
	p.SpliceInAfter(e2, cz)

	p.SpliceFirst(za)
	p.SpliceInAfter(za, zc)

	_ = e3
	return z, za, zc, nil
}

// removeDiagonalVertex is insertDiagonalVertex's local inverse.
func removeDiagonalVertex(p *core.Pool, z core.VertexID) error {
	rot := p.Rotation(z)
	for _, h := range rot {
		inv := p.Twin(h)
		p.SpliceOut(h)
		p.SpliceOut(inv)
		if err := p.FreeEdgePair(h); err != nil {
			return opsErrorf("removeDiagonalVertex", "freeing edge", err)
		}
	}
	return p.FreeVertex(z)
}

// findQuadFaceCandidates returns one boundary half-edge (Face.Start) per
// face of size 4; callers dedupe the result by automorphism orbit.
func findQuadFaceCandidates(p *core.Pool) []core.HalfEdgeID {
	var cand []core.HalfEdgeID
	for _, f := range p.Faces() {
		if f.Size == 4 {
			cand = append(cand, f.Start)
		}
	}
	return cand
}

// FindExtensionsP0 enumerates P0's sites: a quadrilateral face, split
// along its diagonal by a fresh degree-2 vertex.
func FindExtensionsP0(p *core.Pool) ([]core.HalfEdgeID, error) {
	return dedupeByOrbit(p, uniformColour(p), findQuadFaceCandidates(p))
}

// ExpandP0 attaches a degree-2 vertex across the corner opposite
// End(FaceNext(site)) (spec.md §4.3 "P0 ... attach a degree-2 vertex
// across a corner").
func ExpandP0(p *core.Pool, site core.HalfEdgeID) (core.VertexID, error) {
	z, _, _, err := insertDiagonalVertex(p, site)
	return z, err
}

// ReduceP0 undoes ExpandP0.
func ReduceP0(p *core.Pool, z core.VertexID) error { return removeDiagonalVertex(p, z) }

// LegalP0 reports whether ref is a canonical-construction-path parent
// among P0's current candidates.
func LegalP0(p *core.Pool, ref core.HalfEdgeID) (bool, error) {
	cand, err := FindExtensionsP0(p)
	if err != nil {
		return false, opsErrorf("LegalP0", "enumerating candidates", err)
	}
	return canonEdgeOf(p, ref, cand)
}

// FindExtensionsP1 enumerates P1's sites: same site shape as P0 (a
// quadrilateral face); P1 additionally tethers the new vertex to one
// incident corner, producing a degree-3 rather than degree-2 vertex.
func FindExtensionsP1(p *core.Pool) ([]core.HalfEdgeID, error) {
	return dedupeByOrbit(p, uniformColour(p), findQuadFaceCandidates(p))
}

// ExpandP1 subdivides one side of the face bounded by site with a new
// degree-3 vertex: the diagonal insertion of ExpandP0, plus one extra
// edge back to b = End(site) so the new vertex also closes off a
// three-way corner at the side it subdivides (spec.md §4.3 "P1 ...
// subdivide one side of a face with a new degree-3 vertex").
func ExpandP1(p *core.Pool, site core.HalfEdgeID) (core.VertexID, error) {
	z, za, zc, err := insertDiagonalVertex(p, site)
	if err != nil {
		return core.NilVertex, err
	}
	b := p.End(site)
	zb, bz, err := p.AllocPair(z, b)
	if err != nil {
		return core.NilVertex, opsErrorf("ExpandP1", "allocating z-b edge", ErrCapacity)
	}
	p.SpliceInAfter(za, zb)
	p.SpliceIn(p.Twin(site), bz)
	_ = zc
	return z, nil
}

// ReduceP1 undoes ExpandP1.
func ReduceP1(p *core.Pool, z core.VertexID) error { return removeDiagonalVertex(p, z) }

// LegalP1 reports whether ref is a canonical-construction-path parent
// among P1's current candidates.
func LegalP1(p *core.Pool, ref core.HalfEdgeID) (bool, error) {
	cand, err := FindExtensionsP1(p)
	if err != nil {
		return false, opsErrorf("LegalP1", "enumerating candidates", err)
	}
	return canonEdgeOf(p, ref, cand)
}

// FindExtensionsP2 enumerates P2's sites: quadrilateral faces with all
// four corners of degree >= 3, the floor a pseudo-wheel step needs since
// it touches all four corners.
func FindExtensionsP2(p *core.Pool) ([]core.HalfEdgeID, error) {
	var cand []core.HalfEdgeID
	for _, h := range findQuadFaceCandidates(p) {
		ok := true
		cur := h
		for i := 0; i < 4; i++ {
			if p.Degree(p.Start(cur)) < 3 {
				ok = false
				break
			}
			cur = p.FaceNext(cur)
		}
		if ok {
			cand = append(cand, h)
		}
	}
	return dedupeByOrbit(p, uniformColour(p), cand)
}

// ExpandP2 performs a pseudo-wheel step, inserting two new degree-3
// vertices into the face bounded by site: one diagonal vertex (as in
// ExpandP0) plus a second vertex subdividing the opposite diagonal's
// near side, joined to the first (spec.md §4.3 "P2 (pseudo-wheel step -
// inserts 2 vertices)").
func ExpandP2(p *core.Pool, site core.HalfEdgeID) (u, v core.VertexID, err error) {
	e1 := p.FaceNext(site)
	if u, _, _, err = insertDiagonalVertex(p, site); err != nil {
		return core.NilVertex, core.NilVertex, err
	}
	if v, _, _, err = insertDiagonalVertex(p, e1); err != nil {
		return core.NilVertex, core.NilVertex, err
	}
	uv, vu, err := p.AllocPair(u, v)
	if err != nil {
		return core.NilVertex, core.NilVertex, opsErrorf("ExpandP2", "allocating u-v edge", ErrCapacity)
	}
	p.SpliceInAfter(p.FirstEdge(u), uv)
	p.SpliceInAfter(p.FirstEdge(v), vu)
	return u, v, nil
}

// ReduceP2 undoes ExpandP2.
func ReduceP2(p *core.Pool, u, v core.VertexID) error {
	if err := removeDiagonalVertex(p, u); err != nil {
		return err
	}
	return removeDiagonalVertex(p, v)
}

// LegalP2 reports whether ref is a canonical-construction-path parent
// among P2's current candidates.
func LegalP2(p *core.Pool, ref core.HalfEdgeID) (bool, error) {
	cand, err := FindExtensionsP2(p)
	if err != nil {
		return false, opsErrorf("LegalP2", "enumerating candidates", err)
	}
	return canonEdgeOf(p, ref, cand)
}

// FindExtensionsP3 enumerates P3's sites: quadrilateral faces, the same
// shape as P0/P1 (P3 is the most permissive operator so it is tried
// last).
func FindExtensionsP3(p *core.Pool) ([]core.HalfEdgeID, error) {
	return dedupeByOrbit(p, uniformColour(p), findQuadFaceCandidates(p))
}

// ExpandP3 inserts a square of four new degree-3 vertices into the face
// bounded by site, one per corner, joined into an inner 4-cycle (spec.md
// §4.3 "P3 (insert a square of four new degree-3 vertices into a
// face)"), mirroring mindeg4.go's ExpandS for quadrilateral faces.
func ExpandP3(p *core.Pool, site core.HalfEdgeID) (q [4]core.VertexID, err error) {
	e := [4]core.HalfEdgeID{site}
	for i := 1; i < 4; i++ {
		e[i] = p.FaceNext(e[i-1])
	}

	for i := 0; i < 4; i++ {
		q[i], _, _, err = insertCornerVertex(p, e[i])
		if err != nil {
			return q, err
		}
	}

	var fwd, bwd [4]core.HalfEdgeID
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		fwd[i], bwd[i], err = p.AllocPair(q[i], q[j])
		if err != nil {
			return q, opsErrorf("ExpandP3", "allocating inner square edge", ErrCapacity)
		}
	}
	for i := 0; i < 4; i++ {
		j := (i + 3) % 4
		first := p.FirstEdge(q[i])
		p.SpliceInAfter(first, fwd[i])
		p.SpliceInAfter(fwd[i], bwd[j])
	}
	return q, nil
}

// ReduceP3 undoes ExpandP3.
func ReduceP3(p *core.Pool, q [4]core.VertexID) error {
	for _, v := range q {
		if err := removeDiagonalVertex(p, v); err != nil {
			return err
		}
	}
	return nil
}

// LegalP3 reports whether ref is a canonical-construction-path parent
// among P3's current candidates.
func LegalP3(p *core.Pool, ref core.HalfEdgeID) (bool, error) {
	cand, err := FindExtensionsP3(p)
	if err != nil {
		return false, opsErrorf("LegalP3", "enumerating candidates", err)
	}
	return canonEdgeOf(p, ref, cand)
}
