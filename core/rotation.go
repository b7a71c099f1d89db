// File: rotation.go
// Role: read accessors and the two local-surgery primitives (SpliceIn,
// SpliceOut) that every operator in ops builds on. SwitchDiagonal lives in
// diagonal.go; allocation lives in alloc.go.

package core

// Start returns the vertex e points away from.
func (p *Pool) Start(e HalfEdgeID) VertexID { return p.he[e].start }

// End returns the vertex e points at.
func (p *Pool) End(e HalfEdgeID) VertexID { return p.he[e].end }

// Next is the clockwise successor of e in the cyclic order around Start(e).
// Next alone fixes the rotation system, i.e. the embedding.
func (p *Pool) Next(e HalfEdgeID) HalfEdgeID { return p.he[e].next }

// Prev is the clockwise predecessor of e around Start(e).
func (p *Pool) Prev(e HalfEdgeID) HalfEdgeID { return p.he[e].prev }

// Twin returns the opposite half-edge of the same undirected edge.
func (p *Pool) Twin(e HalfEdgeID) HalfEdgeID { return p.he[e].inv }

// Min returns the canonical representative of {e, Twin(e)}: the smaller
// HalfEdgeID of the pair, fixed at allocation time (AllocPair).
func (p *Pool) Min(e HalfEdgeID) HalfEdgeID { return p.he[e].min }

// RotateCW is an alias for Next, named after the primitive in spec.md §4.1.
func (p *Pool) RotateCW(e HalfEdgeID) HalfEdgeID { return p.he[e].next }

// RotateCCW is an alias for Prev.
func (p *Pool) RotateCCW(e HalfEdgeID) HalfEdgeID { return p.he[e].prev }

// Degree returns the number of half-edges anchored at v.
func (p *Pool) Degree(v VertexID) int { return int(p.vx[v].degree) }

// FirstEdge returns an arbitrary half-edge with Start == v, or NilHalfEdge
// if v is isolated (degree 0).
func (p *Pool) FirstEdge(v VertexID) HalfEdgeID { return p.vx[v].first }

// SetFirstEdge lets an operator repair FirstEdge(v) after surgery that may
// have invalidated the previous anchor (e.g. SpliceOut removing it).
// Operators, not Pool methods, own this responsibility per spec.md §3.
func (p *Pool) SetFirstEdge(v VertexID, e HalfEdgeID) { p.vx[v].first = e }

// SpliceFirst attaches h as the sole half-edge of a currently-isolated
// vertex (Degree(Start(h)) == 0): h becomes a self-cycle (Next(h) ==
// Prev(h) == h) and FirstEdge is set. Use SpliceIn/SpliceInAfter once the
// vertex already has at least one half-edge.
func (p *Pool) SpliceFirst(h HalfEdgeID) {
	v := p.he[h].start
	p.he[h].next = h
	p.he[h].prev = h
	p.vx[v].first = h
	p.vx[v].degree = 1
}

// SpliceIn inserts the fresh half-edge h into the cyclic order around
// Start(e), immediately before e (i.e. between Prev(e) and e). The caller
// guarantees h is a freshly allocated half-edge (AllocPair) not currently
// linked into any rotation, and that h.start already equals Start(e)'s
// target vertex - set by the caller via the paired AllocPair call.
//
// Complexity: O(1).
func (p *Pool) SpliceIn(e, h HalfEdgeID) {
	v := p.he[e].start
	pe := p.he[e].prev

	p.he[h].start = v
	p.he[pe].next = h
	p.he[h].prev = pe
	p.he[h].next = e
	p.he[e].prev = h

	p.vx[v].degree++
	if p.vx[v].first == NilHalfEdge {
		p.vx[v].first = h
	}
}

// SpliceInAfter inserts h immediately after e (between e and Next(e)).
// Equivalent to SpliceIn(Next(e), h) but spelled out for callers that only
// have e and want the "after" position, e.g. seed construction.
func (p *Pool) SpliceInAfter(e, h HalfEdgeID) {
	p.SpliceIn(p.he[e].next, h)
}

// SpliceOut removes e from the cyclic order around Start(e), leaving the
// vertex isolated if e was its last half-edge. Most callers (per spec.md
// §4.1) guarantee Degree(Start(e)) >= 2 beforehand; the degree-1 case is
// handled too so FreeVertex can always be reached via SpliceOut + FreeEdgePair.
//
// Complexity: O(1).
func (p *Pool) SpliceOut(e HalfEdgeID) {
	v := p.he[e].start
	pe := p.he[e].prev
	ne := p.he[e].next

	if pe == e { // e was the only half-edge at v
		p.vx[v].degree = 0
		p.vx[v].first = NilHalfEdge
		return
	}

	p.he[pe].next = ne
	p.he[ne].prev = pe

	p.vx[v].degree--
	if p.vx[v].first == e {
		p.vx[v].first = ne
	}
}

// Rotation returns the half-edges anchored at v in clockwise order,
// starting from FirstEdge(v). Intended for tests, seed construction, and
// emitters - not for the hot recursion (it allocates).
func (p *Pool) Rotation(v VertexID) []HalfEdgeID {
	first := p.vx[v].first
	if first == NilHalfEdge {
		return nil
	}
	out := make([]HalfEdgeID, 0, p.vx[v].degree)
	e := first
	for {
		out = append(out, e)
		e = p.he[e].next
		if e == first {
			break
		}
	}
	return out
}
