// File: bootstrap.go
// Role: one-shot construction of a complete Pool from an explicit rotation
// system, used by the seed package to build the small fixed base graphs
// (K4, octahedron, icosahedron, cube, 4-cycle) without paying for N
// incremental SpliceIn calls per vertex.

package core

// Bootstrap builds a fresh Pool from rot, where rot[v] lists v's neighbours
// in clockwise rotation order. Each undirected edge (u,w) must appear
// exactly once in rot[u] and exactly once in rot[w]; Bootstrap matches the
// two occurrences by (low vertex, position among equal neighbours) so
// multi-edges are supported by repeating w in rot[u] multiple times in
// step with repeating u in rot[w].
//
// Bootstrap is for known-small, known-consistent inputs (seed graphs); it
// does not validate embedding consistency beyond panicking on malformed
// input (mismatched neighbour counts), matching the teacher's convention of
// confining hard failures to construction-time option/argument validation
// (builder/errors.go's "WithX... should panic" policy) rather than the
// generation hot path, which never panics.
func Bootstrap(maxOrder int, rot [][]VertexID) *Pool {
	p := NewPool(maxOrder)
	n := len(rot)

	for i := 0; i < n; i++ {
		if _, err := p.AllocVertex(); err != nil {
			panic(err)
		}
	}

	// pending[u][w] is a FIFO of half-edges w->u (the twins allocated while
	// processing rot[u]) not yet consumed by the matching occurrence of u
	// in rot[w].
	pending := make([]map[VertexID][]HalfEdgeID, n)
	for i := range pending {
		pending[i] = make(map[VertexID][]HalfEdgeID)
	}

	// built[v] collects v's half-edges in the exact order given by rot[v].
	built := make([][]HalfEdgeID, n)

	for u := 0; u < n; u++ {
		built[u] = make([]HalfEdgeID, 0, len(rot[u]))
		for _, w := range rot[u] {
			// Prefer an already-allocated u->w half-edge waiting to be
			// matched (the twin created while processing w, or earlier in
			// this same loop for a parallel edge).
			if q := pending[int(w)][VertexID(u)]; len(q) > 0 {
				heUW := q[0]
				pending[int(w)][VertexID(u)] = q[1:]
				built[u] = append(built[u], heUW)
				continue
			}

			e, inv, err := p.AllocPair(VertexID(u), w)
			if err != nil {
				panic(err)
			}
			built[u] = append(built[u], e)
			pending[u][w] = append(pending[u][w], inv)
		}
	}

	// Assemble each vertex's cyclic rotation directly from built[v].
	for v := 0; v < n; v++ {
		k := len(built[v])
		if k == 0 {
			continue
		}
		for i, e := range built[v] {
			next := built[v][(i+1)%k]
			prev := built[v][(i-1+k)%k]
			p.he[e].next = next
			p.he[e].prev = prev
		}
		p.vx[v].first = built[v][0]
		p.vx[v].degree = int32(k)
	}

	return p
}
