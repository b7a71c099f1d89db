// File: disk.go
// Role: outer-face vertex removal, disk triangulations' final-step
// transform (spec.md §4.3 "Disk triangulations"), recursed from the bare
// triangle (seed.SpecialCase's n=3 case). A disk triangulation is an
// ordinary triangulation with one distinguished outer face of arbitrary
// size; ExpandE3/E4/E5 from triangulation.go already generate its
// interior, so this file only adds the operator that grows or shrinks the
// distinguished outer boundary itself.

package ops

import "github.com/katalvlaran/planargen/core"

// OuterFace returns the half-edge p.Boundary reports as the start of the
// pool's distinguished outer face, or core.NilHalfEdge if none is marked.
func OuterFace(p *core.Pool) core.HalfEdgeID {
	return p.Boundary()
}

// FindExtensionsBoundary enumerates sites on the outer boundary: every
// half-edge of the outer face is a candidate attachment point for a new
// boundary vertex, deduped by orbit.
func FindExtensionsBoundary(p *core.Pool) ([]core.HalfEdgeID, error) {
	start := p.Boundary()
	if start == core.NilHalfEdge {
		return nil, nil
	}
	var cand []core.HalfEdgeID
	for h := start; ; {
		cand = append(cand, h)
		h = p.FaceNext(h)
		if h == start {
			break
		}
	}
	return dedupeByOrbit(p, uniformColour(p), cand)
}

// ExpandBoundary attaches a fresh degree-2 vertex z across the outer
// boundary edge site (a->b), splitting off a new triangular interior face
// (a,b,z) via insertCornerVertex and replacing site, as part of the outer
// boundary, with the two-edge path a-z-b (spec.md §4.3 "outer-face vertex
// removal", run here in its growing direction).
//
// Complexity: O(1).
func ExpandBoundary(p *core.Pool, site core.HalfEdgeID) (core.VertexID, error) {
	wasBoundary := p.Boundary() == site

	z, zx, _, err := insertCornerVertex(p, site)
	if err != nil {
		return core.NilVertex, err
	}

	if wasBoundary {
		p.SetBoundary(p.Twin(zx)) // a -> z, the new outer-face edge replacing site
	}
	return z, nil
}

// ReduceBoundary undoes ExpandBoundary at the degree-2 boundary vertex z.
func ReduceBoundary(p *core.Pool, z core.VertexID) error {
	rot := p.Rotation(z)
	if len(rot) != 2 {
		return opsErrorf("ReduceBoundary", "vertex %d has degree %d, want 2", ErrIllegalReduce, z, len(rot))
	}
	a := p.End(rot[0])
	b := p.End(rot[1])
	wasBoundary := p.Boundary() == p.Twin(rot[0]) || p.Boundary() == p.Twin(rot[1])
	replacement := edgeBetween(p, a, b)

	for _, h := range rot {
		inv := p.Twin(h)
		p.SpliceOut(h)
		p.SpliceOut(inv)
		if err := p.FreeEdgePair(h); err != nil {
			return opsErrorf("ReduceBoundary", "freeing edge", err)
		}
	}
	if err := p.FreeVertex(z); err != nil {
		return opsErrorf("ReduceBoundary", "freeing vertex %d", err, z)
	}
	if wasBoundary && replacement != core.NilHalfEdge {
		p.SetBoundary(replacement)
	}
	return nil
}

// LegalBoundary reports whether ref is a canonical-construction-path
// parent among the outer-boundary operator's current candidates.
func LegalBoundary(p *core.Pool, ref core.HalfEdgeID) (bool, error) {
	cand, err := FindExtensionsBoundary(p)
	if err != nil {
		return false, opsErrorf("LegalBoundary", "enumerating candidates", err)
	}
	return canonEdgeOf(p, ref, cand)
}
