// File: from_pool.go
// Role: lower an embedded core.Pool to an unembedded Graph that keeps
// only the combinatorial graph; the rotation system is discarded here
// (see doc.go).

package simplegraph

import (
	"strconv"

	"github.com/katalvlaran/planargen/core"
)

// FromPool walks every vertex of p and its rotation, adding one undirected
// edge per unordered pair exactly once (using core.Pool's min-of-pair field
// to dedupe each half-edge against its twin), and returns the resulting
// unembedded Graph. Vertex IDs are the pool's vertex indices formatted in
// decimal, so FromPool(p) followed by Vertices() recovers 0..p.Order()-1 in
// the same order core.VertexID enumerates them.
//
// Complexity: O(V+E) in p's current size.
func FromPool(p *core.Pool) *Graph {
	g := NewGraph(WithMultiEdges(), WithLoops())

	n := int(p.Order())
	for v := 0; v < n; v++ {
		_ = g.AddVertex(strconv.Itoa(v))
	}

	for v := 0; v < n; v++ {
		first := p.FirstEdge(core.VertexID(v))
		if first == core.NilHalfEdge {
			continue
		}
		for h := first; ; {
			if p.Min(h) == h { // visit each undirected edge via its canonical half-edge only
				from := strconv.Itoa(v)
				to := strconv.Itoa(int(p.End(h)))
				_, _ = g.AddEdge(from, to, 0)
			}
			h = p.Next(h)
			if h == first {
				break
			}
		}
	}

	return g
}
