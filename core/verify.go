// File: verify.go
// Role: full invariant check (spec.md §3, §8). Never called from the hot
// recursion; used by tests and by operators' own *_test.go round-trip
// checks (§8 "Round-trip").

package core

// Verify checks every invariant spec.md §3 requires to hold before and
// after an operator, returning the first violation found wrapped in
// ErrInvariant, or nil if the pool is consistent.
//
// Complexity: O(total half-edges + faces).
func (p *Pool) Verify() error {
	for e := HalfEdgeID(0); int(e) < len(p.he); e++ {
		if !p.he[e].live {
			continue
		}
		if p.he[p.he[e].prev].next != e {
			return coreErrorf("Verify", "Next(Prev(%d)) != %d", ErrInvariant, e, e)
		}
		if p.he[p.he[e].next].prev != e {
			return coreErrorf("Verify", "Prev(Next(%d)) != %d", ErrInvariant, e, e)
		}
		inv := p.he[e].inv
		if p.he[inv].inv != e {
			return coreErrorf("Verify", "Twin(Twin(%d)) != %d", ErrInvariant, e, e)
		}
		if p.he[inv].start != p.he[e].end {
			return coreErrorf("Verify", "Start(Twin(%d)) != End(%d)", ErrInvariant, e, e)
		}
		if p.he[e].min != p.he[inv].min {
			return coreErrorf("Verify", "Min(%d) != Min(Twin(%d))", ErrInvariant, e, e)
		}
		if p.he[e].min != e && p.he[e].min != inv {
			return coreErrorf("Verify", "Min(%d) is neither %d nor its twin", ErrInvariant, e, e)
		}
	}

	for v := VertexID(0); int(v) < len(p.vx); v++ {
		if !p.vx[v].live {
			continue
		}
		first := p.vx[v].first
		if first == NilHalfEdge {
			if p.vx[v].degree != 0 {
				return coreErrorf("Verify", "vertex %d has no FirstEdge but degree %d", ErrInvariant, v, p.vx[v].degree)
			}
			continue
		}
		count := 0
		for e := first; ; {
			if p.he[e].start != v {
				return coreErrorf("Verify", "half-edge %d on vertex %d's rotation does not start at %d", ErrInvariant, e, v, v)
			}
			count++
			e = p.he[e].next
			if e == first {
				break
			}
			if count > len(p.he) {
				return coreErrorf("Verify", "rotation at vertex %d does not close", ErrInvariant, v)
			}
		}
		if count != int(p.vx[v].degree) {
			return coreErrorf("Verify", "vertex %d: rotation length %d != Degree %d", ErrInvariant, v, count, p.vx[v].degree)
		}
	}

	n, m, f := int(p.n), p.m, len(p.Faces())
	if n-m+f != 2 {
		return coreErrorf("Verify", "Euler characteristic %d-%d+%d=%d != 2", ErrInvariant, n, m, f, n-m+f)
	}

	return nil
}
