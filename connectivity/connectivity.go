// File: connectivity.go
// Role: KConnected, the public Menger's-theorem oracle polytope.go and the
// mindeg-4/mindeg-5 operator families call to keep their floor invariants.

package connectivity

import "github.com/katalvlaran/planargen/core"

// adjacency lowers a core.Pool into a plain int32 adjacency list, the
// shape buildNetwork needs; simple (no multi-edges/loops) since every
// class this package serves generates simple planar graphs.
func adjacency(p *core.Pool) [][]int32 {
	n := int(p.Order())
	adj := make([][]int32, n)
	for v := 0; v < n; v++ {
		first := p.FirstEdge(core.VertexID(v))
		if first == core.NilHalfEdge {
			continue
		}
		for h := first; ; {
			adj[v] = append(adj[v], int32(p.End(h)))
			h = p.Next(h)
			if h == first {
				break
			}
		}
	}
	return adj
}

// buildNetwork constructs the vertex-split flow network for an n-vertex
// graph given by adj, with source and sink left unsplit (capacity infCap
// on their in->out arc) so up to k units of flow can actually leave them.
func buildNetwork(adj [][]int32, source, sink int32) *network {
	n := int32(len(adj))
	g := newNetwork(2 * n)

	for v := int32(0); v < n; v++ {
		cap := int32(1)
		if v == source || v == sink {
			cap = infCap
		}
		g.addArc(2*v, 2*v+1, cap) // v_in -> v_out
	}
	for u, nbrs := range adj {
		for _, v := range nbrs {
			if int32(u) == v {
				continue
			}
			g.addArc(2*int32(u)+1, 2*v, 1) // u_out -> v_in
		}
	}
	return g
}

// locallyKConnected reports whether at least k vertex-disjoint paths
// exist between s and t (both distinct, non-adjacent or not - adjacency
// contributes at most one of the k paths through the direct edge, which
// buildNetwork's u_out->v_in arc already accounts for).
func locallyKConnected(adj [][]int32, s, t int32, k int) bool {
	g := buildNetwork(adj, s, t)
	return g.maxFlow(2*s+1, 2*t, k) >= k
}

// KConnected reports whether p is k-vertex-connected: removing any k-1
// vertices leaves it connected. Uses Even's algorithm: a graph with n > k
// vertices is k-connected iff a fixed vertex s of minimum degree has k
// vertex-disjoint paths to every vertex it is not adjacent to, and every
// pair among the k vertices of lowest degree also has k vertex-disjoint
// paths between them.
//
// Complexity: O(n + k^2) max-flow probes, each O(k*(n+m)).
func KConnected(p *core.Pool, k int) (bool, error) {
	n := int(p.Order())
	if n < k+1 {
		return false, connErrorf("KConnected", "graph has %d vertices, need >= %d", ErrTooFewVertices, n, k+1)
	}
	if k <= 0 {
		return true, nil
	}

	adj := adjacency(p)

	degree := make([]int, n)
	for v := 0; v < n; v++ {
		degree[v] = len(adj[v])
	}
	order := make([]int, n)
	for v := range order {
		order[v] = v
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && degree[order[j]] < degree[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	s := int32(order[0])
	adjacent := make(map[int32]bool, degree[order[0]])
	for _, v := range adj[s] {
		adjacent[v] = true
	}
	for v := int32(0); int(v) < n; v++ {
		if v == s || adjacent[v] {
			continue
		}
		if !locallyKConnected(adj, s, v, k) {
			return false, nil
		}
	}

	bound := k
	if bound > len(order) {
		bound = len(order)
	}
	for i := 0; i < bound; i++ {
		for j := i + 1; j < bound; j++ {
			a, b := int32(order[i]), int32(order[j])
			if a == b {
				continue
			}
			if !locallyKConnected(adj, a, b, k) {
				return false, nil
			}
		}
	}
	return true, nil
}
