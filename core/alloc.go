// File: alloc.go
// Role: vertex and half-edge-pair allocation/release against the fixed
// slab sized by NewPool. Reuse free lists first so the pool never grows
// once sized (spec.md §3 "Lifecycle").

package core

// AllocVertex reserves a fresh, isolated vertex (degree 0, no FirstEdge).
// Reuses a freed slot if one exists, otherwise grows into unused slab
// capacity. Returns ErrCapacity if the slab sized by NewPool is exhausted.
//
// Complexity: O(1).
func (p *Pool) AllocVertex() (VertexID, error) {
	if k := len(p.freeVerts); k > 0 {
		v := p.freeVerts[k-1]
		p.freeVerts = p.freeVerts[:k-1]
		p.vx[v] = vertex{degree: 0, first: NilHalfEdge, live: true}
		p.n++
		return v, nil
	}

	if len(p.vx) == cap(p.vx) {
		return NilVertex, coreErrorf("AllocVertex", "no vertex slots left (cap=%d)", ErrCapacity, cap(p.vx))
	}

	v := VertexID(len(p.vx))
	p.vx = append(p.vx, vertex{degree: 0, first: NilHalfEdge, live: true})
	p.n++
	return v, nil
}

// FreeVertex releases v back to the free list. The caller guarantees v is
// isolated (Degree(v) == 0); operators reduce edges before reducing the
// vertices they touched.
func (p *Pool) FreeVertex(v VertexID) error {
	if p.vx[v].degree != 0 {
		return coreErrorf("FreeVertex", "vertex %d still has degree %d", ErrBadDegree, v, p.vx[v].degree)
	}
	p.vx[v].live = false
	p.vx[v].first = NilHalfEdge
	p.freeVerts = append(p.freeVerts, v)
	p.n--
	return nil
}

// AllocPair reserves a fresh undirected edge between u and v as two
// half-edges, (u->v) and its twin (v->u), consecutive in the slab so that
// Twin is a direct field read rather than a search. Neither half-edge is
// linked into any rotation yet; the caller must SpliceIn both ends.
//
// Complexity: O(1).
func (p *Pool) AllocPair(u, v VertexID) (HalfEdgeID, HalfEdgeID, error) {
	var e HalfEdgeID

	if k := len(p.freeEdges); k > 0 {
		e = p.freeEdges[k-1]
		p.freeEdges = p.freeEdges[:k-1]
	} else {
		if len(p.he)+2 > cap(p.he) {
			return NilHalfEdge, NilHalfEdge, coreErrorf("AllocPair", "no half-edge slots left (cap=%d)", ErrCapacity, cap(p.he))
		}
		e = HalfEdgeID(len(p.he))
		p.he = append(p.he, halfEdge{}, halfEdge{})
	}
	inv := e + 1

	p.he[e] = halfEdge{start: u, end: v, next: e, prev: e, inv: inv, min: e, live: true}
	p.he[inv] = halfEdge{start: v, end: u, next: inv, prev: inv, inv: e, min: e, live: true}

	p.m++
	return e, inv, nil
}

// FreeEdgePair releases the undirected edge represented by e (and its twin)
// back to the free list. The caller guarantees both half-edges have
// already been spliced out of their respective rotations.
//
// Complexity: O(1).
func (p *Pool) FreeEdgePair(e HalfEdgeID) error {
	if !p.he[e].live {
		return coreErrorf("FreeEdgePair", "half-edge %d is not live", ErrFreeSlot, e)
	}
	inv := p.he[e].inv
	head := e
	if inv < head {
		head = inv
	}

	p.he[e].live = false
	p.he[inv].live = false
	p.freeEdges = append(p.freeEdges, head)
	p.m--
	return nil
}
