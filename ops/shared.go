// File: shared.go
// Role: the generic vertex-insertion/removal surgery every E3/E4/E5-style
// operator specializes (spec.md §4.3 "vertex insertion operators"), plus
// small rotation-search helpers the per-family files share.
//
// ExpandFan/ReduceFan implement the operator family E_k: pick k-1
// consecutive half-edges around a vertex w (spanning k-2 triangular
// faces), delete the k-3 interior spokes to merge those faces into one
// k-gon hole bounded by w and the k-1 "rim" vertices, then insert a fresh
// degree-k vertex connected to every boundary vertex. E3 is the k=3 case
// with zero interior spokes (plain insertion into an existing triangular
// face); E4 and E5 are the k=4 and k=5 cases.

package ops

import "github.com/katalvlaran/planargen/core"

// edgeBetween scans u's rotation for the half-edge ending at v, returning
// core.NilHalfEdge if u and v are not adjacent. O(Degree(u)).
func edgeBetween(p *core.Pool, u, v core.VertexID) core.HalfEdgeID {
	first := p.FirstEdge(u)
	if first == core.NilHalfEdge {
		return core.NilHalfEdge
	}
	for h := first; ; {
		if p.End(h) == v {
			return h
		}
		h = p.Next(h)
		if h == first {
			return core.NilHalfEdge
		}
	}
}

// fanSpokes returns the k-1 consecutive half-edges starting at e1 around
// Start(e1) (e1 itself plus k-2 further steps of Next).
func fanSpokes(p *core.Pool, e1 core.HalfEdgeID, k int) []core.HalfEdgeID {
	spokes := make([]core.HalfEdgeID, k-1)
	cur := e1
	for i := 0; i < k-1; i++ {
		spokes[i] = cur
		cur = p.Next(cur)
	}
	return spokes
}

// ExpandFan inserts a fresh degree-k vertex into the k-gon hole obtained by
// deleting the k-3 interior spokes of the fan rooted at e1 (see file doc).
// e1 must be a half-edge whose Next, iterated k-2 further times, stays
// within w's existing rotation (i.e. w has degree >= k-1). Returns the new
// vertex and its half-edge to w (the first entry of its rotation).
//
// Complexity: O(k).
func ExpandFan(p *core.Pool, e1 core.HalfEdgeID, k int) (core.VertexID, core.HalfEdgeID, error) {
	w := p.Start(e1)
	spokes := fanSpokes(p, e1, k)
	last := spokes[k-2] // e_{k-1} = w -> v_{k-1}

	// Rim vertices v_1..v_{k-1} and the reinsertion reference captured
	// before any interior spoke is removed: ref_i survives removal and marks
	// exactly where the new edge to z belongs (right after ref_0 and
	// ref_{k-2}, right before ref_i at the interior rim vertices, where it
	// takes the removed spoke's slot).
	rim := make([]core.VertexID, k-1)
	ref := make([]core.HalfEdgeID, k-1)
	for i, s := range spokes {
		rim[i] = p.End(s)
	}
	ref[0] = p.Prev(p.Twin(spokes[0]))      // v_1's rim-out edge (to v_2)
	ref[k-2] = p.Twin(spokes[k-2])           // v_{k-1}'s edge to w
	for i := 1; i <= k-3; i++ {
		ref[i] = p.Next(p.Twin(spokes[i])) // v_i's rim-out edge, surviving removal
	}

	// Delete the k-3 interior spokes, merging the k-2 triangles into one hole.
	for i := 1; i <= k-3; i++ {
		inv := p.Twin(spokes[i])
		p.SpliceOut(spokes[i])
		p.SpliceOut(inv)
		if err := p.FreeEdgePair(spokes[i]); err != nil {
			return core.NilVertex, core.NilHalfEdge, opsErrorf("ExpandFan", "freeing interior spoke", err)
		}
	}

	z, err := p.AllocVertex()
	if err != nil {
		return core.NilVertex, core.NilHalfEdge, opsErrorf("ExpandFan", "allocating vertex", ErrCapacity)
	}

	zw, wz, err := p.AllocPair(z, w)
	if err != nil {
		return core.NilVertex, core.NilHalfEdge, opsErrorf("ExpandFan", "allocating z-w edge", ErrCapacity)
	}
	p.SpliceFirst(zw)
	p.SpliceIn(last, wz) // wz inserted between spokes[0] and last at w

	prevZ := zw
	for i := 0; i < k-1; i++ {
		zv, vz, err := p.AllocPair(z, rim[i])
		if err != nil {
			return core.NilVertex, core.NilHalfEdge, opsErrorf("ExpandFan", "allocating z-rim edge", ErrCapacity)
		}
		p.SpliceInAfter(prevZ, zv)
		if i == 0 || i == k-2 {
			p.SpliceInAfter(ref[i], vz)
		} else {
			p.SpliceIn(ref[i], vz)
		}
		prevZ = zv
	}

	return z, zw, nil
}

// ReduceFan is ExpandFan's exact local inverse: given the vertex z a prior
// ExpandFan produced (identified by any one of its half-edges), it removes
// z and restores the k-3 interior spokes, recovering the original fan.
//
// Complexity: O(Degree(z)).
func ReduceFan(p *core.Pool, z core.VertexID) error {
	rot := p.Rotation(z)
	k := len(rot)
	if k < 3 {
		return opsErrorf("ReduceFan", "vertex %d has degree %d, want >= 3", ErrIllegalReduce, z, k)
	}

	w := p.End(rot[0])
	rim := make([]core.VertexID, k-1)
	for i := 1; i < k; i++ {
		rim[i-1] = p.End(rot[i])
	}

	for _, h := range rot {
		inv := p.Twin(h)
		p.SpliceOut(h)
		p.SpliceOut(inv)
		if err := p.FreeEdgePair(h); err != nil {
			return opsErrorf("ReduceFan", "freeing z-edge", err)
		}
	}
	if err := p.FreeVertex(z); err != nil {
		return opsErrorf("ReduceFan", "freeing vertex %d", err, z)
	}

	anchor := edgeBetween(p, w, rim[0])
	for i := 1; i <= k-3; i++ {
		vi := rim[i]
		refAtVi := edgeBetween(p, vi, rim[i+1])
		wv, vw, err := p.AllocPair(w, vi)
		if err != nil {
			return opsErrorf("ReduceFan", "restoring interior spoke", err)
		}
		p.SpliceInAfter(anchor, wv)
		p.SpliceInAfter(refAtVi, vw)
		anchor = wv
	}
	return nil
}
