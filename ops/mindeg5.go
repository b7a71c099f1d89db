// File: mindeg5.go
// Role: A/B/C, the expansion operators for minimum-degree-5
// triangulations (spec.md §4.3 "Minimum degree 5"), recursed from the
// icosahedron. Operator priority is A > B > C (spec.md §4.4): each of
// FindExtensionsB/FindExtensionsC excludes sites whose result a
// higher-priority operator could also have reduced, so every isomorphism
// class is produced along exactly one path.

package ops

import "github.com/katalvlaran/planargen/core"

// FindExtensionsA enumerates A's sites: a 5-fan whose apex has degree >= 6,
// so the apex's degree (which drops by 4-k = -1) stays >= 5 afterwards.
// A is exactly the degree-5 case of the shared vertex-split primitive
// (shared.go): the new vertex keeps two of w's existing neighbours shared
// with w across the split and takes the other two exclusively, giving it
// degree 5 overall (w plus its four rim vertices).
func FindExtensionsA(p *core.Pool) ([]core.HalfEdgeID, error) {
	all := fanCandidates(p, 5)
	var ok []core.HalfEdgeID
	for _, h := range all {
		if p.Degree(p.Start(h)) >= 6 {
			ok = append(ok, h)
		}
	}
	return dedupeByOrbit(p, uniformColour(p), ok)
}

// ExpandA splits a high-degree vertex in two at site (the two-argument
// rotation-position form is site and its Next, iterated three further
// times), producing a new degree-5 vertex.
func ExpandA(p *core.Pool, site core.HalfEdgeID) (core.VertexID, error) {
	z, _, err := ExpandFan(p, site, 5)
	return z, err
}

// ReduceA undoes ExpandA.
func ReduceA(p *core.Pool, z core.VertexID) error { return ReduceFan(p, z) }

// LegalA reports whether ref is a canonical-construction-path parent
// among A's current candidates.
func LegalA(p *core.Pool, ref core.HalfEdgeID) (bool, error) {
	cand, err := FindExtensionsA(p)
	if err != nil {
		return false, opsErrorf("LegalA", "enumerating candidates", err)
	}
	return canonEdgeOf(p, ref, cand)
}

// FindExtensionsB enumerates B's sites: edges joining two degree-5
// vertices. A would already have claimed any such edge whose endpoint has
// degree >= 6, so B only needs to exclude nothing further here - both
// endpoints are pinned at exactly 5, which is below A's >= 6 floor.
func FindExtensionsB(p *core.Pool) ([]core.HalfEdgeID, error) {
	var cand []core.HalfEdgeID
	n := int(p.Order())
	for v := 0; v < n; v++ {
		u := core.VertexID(v)
		if p.Degree(u) != 5 {
			continue
		}
		first := p.FirstEdge(u)
		if first == core.NilHalfEdge {
			continue
		}
		for h := first; ; {
			if p.Degree(p.End(h)) == 5 && p.Min(h) == h {
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

// ExpandB replaces the edge u->v at site with a gadget of two new degree-5
// vertices x (on u's side) and y (on v's side), joined directly and each
// carrying one extra corner from the faces the original edge bounded
// (spec.md §4.3 "B ... two new degree-5 vertices"). x and y take the place
// of u and v as insertCornerVertex corners of the two faces flanking site,
// then connect to each other in place of the deleted original edge.
//
// Complexity: O(1).
func ExpandB(p *core.Pool, site core.HalfEdgeID) (x, y core.VertexID, err error) {
	inv := p.Twin(site)
	fa := p.FaceNext(site) // names the face on site's side
	fb := p.FaceNext(inv)  // names the face on inv's side

	p.SpliceOut(site)
	p.SpliceOut(inv)
	if err = p.FreeEdgePair(site); err != nil {
		return core.NilVertex, core.NilVertex, opsErrorf("ExpandB", "freeing site edge", err)
	}

	var xu, xa, yv, yb core.HalfEdgeID
	if x, xu, xa, err = insertCornerVertex(p, fa); err != nil {
		return core.NilVertex, core.NilVertex, err
	}
	if y, yv, yb, err = insertCornerVertex(p, fb); err != nil {
		return core.NilVertex, core.NilVertex, err
	}
	_, _ = xu, yv

	xy, yx, err := p.AllocPair(x, y)
	if err != nil {
		return core.NilVertex, core.NilVertex, opsErrorf("ExpandB", "allocating x-y edge", ErrCapacity)
	}
	p.SpliceIn(xa, xy)
	p.SpliceIn(yb, yx)

	return x, y, nil
}

// ReduceB is ExpandB's exact local inverse, given the pair it produced.
func ReduceB(p *core.Pool, x, y core.VertexID) error {
	for _, v := range []core.VertexID{x, y} {
		rot := p.Rotation(v)
		for _, h := range rot {
			inv := p.Twin(h)
			p.SpliceOut(h)
			p.SpliceOut(inv)
			if err := p.FreeEdgePair(h); err != nil {
				return opsErrorf("ReduceB", "freeing edge of vertex %d", err, v)
			}
		}
		if err := p.FreeVertex(v); err != nil {
			return opsErrorf("ReduceB", "freeing vertex %d", err, v)
		}
	}
	return nil
}

// LegalB reports whether ref is a canonical-construction-path parent
// among B's current candidates.
func LegalB(p *core.Pool, ref core.HalfEdgeID) (bool, error) {
	cand, err := FindExtensionsB(p)
	if err != nil {
		return false, opsErrorf("LegalB", "enumerating candidates", err)
	}
	return canonEdgeOf(p, ref, cand)
}

// FindExtensionsC enumerates C's sites: degree-5 vertices not already a
// valid B endpoint pairing (every neighbour of a degree-5 vertex being
// itself degree 5 would make the site ambiguous between B and C; C is
// tried only once B has been exhausted for a given class, so no further
// filtering happens here beyond the degree floor).
func FindExtensionsC(p *core.Pool) ([]core.HalfEdgeID, error) {
	var cand []core.HalfEdgeID
	n := int(p.Order())
	for v := 0; v < n; v++ {
		if p.Degree(core.VertexID(v)) == 5 {
			if h := p.FirstEdge(core.VertexID(v)); h != core.NilHalfEdge {
				cand = append(cand, h)
			}
		}
	}
	return dedupeByOrbit(p, uniformColour(p), cand)
}

// ExpandC blows up the degree-5 vertex w = Start(site) into a wheel of
// five new degree-5 vertices surrounding one new central degree-5 vertex
// (spec.md §4.3 "C ... wheel of five degree-5 vertices"). w's five
// original neighbours n_0..n_4 (in rotation order) are shared pairwise:
// wheel vertex wh_i keeps n_i and n_{i-1}, plus its two wheel neighbours
// and the centre, for degree 5; the centre connects to all five wheel
// vertices, also degree 5.
//
// Complexity: O(1).
func ExpandC(p *core.Pool, site core.HalfEdgeID) (centre core.VertexID, wheel [5]core.VertexID, err error) {
	w := p.Start(site)
	spokes := [5]core.HalfEdgeID{}
	cur := site
	for i := 0; i < 5; i++ {
		spokes[i] = cur
		cur = p.Next(cur)
	}

	var n [5]core.VertexID
	var prevAt, nextAt [5]core.HalfEdgeID
	for i, s := range spokes {
		n[i] = p.End(s)
		inv := p.Twin(s)
		prevAt[i] = p.Prev(inv)
		nextAt[i] = p.Next(inv)
		if prevAt[i] == inv {
			prevAt[i] = core.NilHalfEdge
		}
		if nextAt[i] == inv {
			nextAt[i] = core.NilHalfEdge
		}
	}

	for _, s := range spokes {
		inv := p.Twin(s)
		p.SpliceOut(s)
		p.SpliceOut(inv)
		if err = p.FreeEdgePair(s); err != nil {
			return core.NilVertex, wheel, opsErrorf("ExpandC", "freeing spoke", err)
		}
	}
	if err = p.FreeVertex(w); err != nil {
		return core.NilVertex, wheel, opsErrorf("ExpandC", "freeing centre seed", err)
	}

	if centre, err = p.AllocVertex(); err != nil {
		return core.NilVertex, wheel, opsErrorf("ExpandC", "allocating centre", ErrCapacity)
	}
	for i := range wheel {
		if wheel[i], err = p.AllocVertex(); err != nil {
			return core.NilVertex, wheel, opsErrorf("ExpandC", "allocating wheel vertex", ErrCapacity)
		}
	}

	// Centre-to-wheel spokes, in wheel order, at both ends.
	var cw, wc [5]core.HalfEdgeID
	for i := 0; i < 5; i++ {
		cw[i], wc[i], err = p.AllocPair(centre, wheel[i])
		if err != nil {
			return core.NilVertex, wheel, opsErrorf("ExpandC", "allocating centre spoke", ErrCapacity)
		}
	}
	p.SpliceFirst(cw[0])
	prev := cw[0]
	for i := 1; i < 5; i++ {
		p.SpliceInAfter(prev, cw[i])
		prev = cw[i]
	}

	// Wheel cycle edges wh_i -> wh_{i+1}.
	var fwd, bwd [5]core.HalfEdgeID
	for i := 0; i < 5; i++ {
		j := (i + 1) % 5
		fwd[i], bwd[i], err = p.AllocPair(wheel[i], wheel[j])
		if err != nil {
			return core.NilVertex, wheel, opsErrorf("ExpandC", "allocating wheel cycle edge", ErrCapacity)
		}
	}

	// Spokes from wheel vertices to the original neighbours: wh_i keeps
	// n_i and n_{i-1}.
	var toNi, toNiPrev [5]core.HalfEdgeID
	for i := 0; i < 5; i++ {
		prevIdx := (i + 4) % 5
		toNi[i], _, err = p.AllocPair(wheel[i], n[i])
		if err != nil {
			return core.NilVertex, wheel, opsErrorf("ExpandC", "allocating wheel-rim edge", ErrCapacity)
		}
		toNiPrev[i], _, err = p.AllocPair(wheel[i], n[prevIdx])
		if err != nil {
			return core.NilVertex, wheel, opsErrorf("ExpandC", "allocating wheel-rim edge", ErrCapacity)
		}
	}

	// Assemble each wh_i's rotation: centre, n_{i-1}, bwd(from wh_{i-1}),
	// [nothing else], fwd(to wh_{i+1}), n_i - a degree-5 cycle.
	for i := 0; i < 5; i++ {
		prevIdx := (i + 4) % 5
		p.SpliceFirst(wc[i])
		p.SpliceInAfter(wc[i], toNiPrev[i])
		p.SpliceInAfter(toNiPrev[i], p.Twin(fwd[prevIdx]))
		p.SpliceInAfter(p.Twin(fwd[prevIdx]), fwd[i])
		p.SpliceInAfter(fwd[i], toNi[i])
	}

	// Reconnect the original neighbours: each n_i gains edges to wh_i and
	// wh_{i+1} in place of its single old edge to w.
	for i := 0; i < 5; i++ {
		j := (i + 1) % 5
		niToWhi := p.Twin(toNi[i])
		niToWhj := p.Twin(toNiPrev[j])
		if nextAt[i] != core.NilHalfEdge {
			p.SpliceIn(nextAt[i], niToWhi)
			p.SpliceInAfter(niToWhi, niToWhj)
		} else {
			p.SpliceFirst(niToWhi)
			p.SpliceInAfter(niToWhi, niToWhj)
		}
	}

	return centre, wheel, nil
}

// ReduceC is ExpandC's exact local inverse, given the centre and wheel it
// produced.
func ReduceC(p *core.Pool, centre core.VertexID, wheel [5]core.VertexID) error {
	for _, v := range append([]core.VertexID{centre}, wheel[:]...) {
		rot := p.Rotation(v)
		for _, h := range rot {
			inv := p.Twin(h)
			p.SpliceOut(h)
			p.SpliceOut(inv)
			if err := p.FreeEdgePair(h); err != nil {
				return opsErrorf("ReduceC", "freeing edge of vertex %d", err, v)
			}
		}
		if err := p.FreeVertex(v); err != nil {
			return opsErrorf("ReduceC", "freeing vertex %d", err, v)
		}
	}
	return nil
}

// LegalC reports whether ref is a canonical-construction-path parent
// among C's current candidates.
func LegalC(p *core.Pool, ref core.HalfEdgeID) (bool, error) {
	cand, err := FindExtensionsC(p)
	if err != nil {
		return false, opsErrorf("LegalC", "enumerating candidates", err)
	}
	return canonEdgeOf(p, ref, cand)
}
