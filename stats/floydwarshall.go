// File: floydwarshall.go
// Role: all-pairs shortest paths over an embedding's 1-skeleton, backing
// Reporter's optional diameter statistic.
//
// Adapted from matrix/impl_floydwarshall.go: same fixed k -> i -> j loop
// order for deterministic accumulation, same in-place flat buffer, but
// over int32 hop-distances (every edge has weight 1) instead of float64
// weights, since a planar embedding carries no edge weights to begin with.

package stats

import "github.com/katalvlaran/planargen/core"

// unreachable stands in for matrix's +Inf: large enough that no genuine
// hop count can reach it, small enough that unreachable+unreachable
// cannot overflow int32.
const unreachable = int32(1) << 29

// adjacencyMatrix lowers p into a flat row-major n*n buffer: dist[i*n+j]
// is 1 if i and j are adjacent, 0 on the diagonal, unreachable otherwise.
func adjacencyMatrix(p *core.Pool) []int32 {
	n := int(p.Order())
	dist := make([]int32, n*n)
	for i := range dist {
		dist[i] = unreachable
	}
	for v := 0; v < n; v++ {
		dist[v*n+v] = 0
	}
	for v := 0; v < n; v++ {
		first := p.FirstEdge(core.VertexID(v))
		if first == core.NilHalfEdge {
			continue
		}
		for h := first; ; {
			u := int(p.End(h))
			dist[v*n+u] = 1
			h = p.Next(h)
			if h == first {
				break
			}
		}
	}
	return dist
}

// floydWarshallInPlace runs APSP closure on the flat n*n buffer dist,
// fixed k -> i -> j loop order.
//
// Complexity: O(n^3) time, O(1) extra space.
func floydWarshallInPlace(dist []int32, n int) {
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			baseI := i * n
			ik := dist[baseI+k]
			if ik >= unreachable {
				continue
			}
			for j := 0; j < n; j++ {
				cand := ik + dist[baseK+j]
				if cand < dist[baseI+j] {
					dist[baseI+j] = cand
				}
			}
		}
	}
}

// diameter returns the longest shortest path in p, the maximum finite
// entry of the all-pairs closure. A planar embedding recovered from
// core.Pool is always connected, so ErrDisconnected only fires against
// hand-built or corrupted input.
//
// Complexity: O(n^3).
func diameter(p *core.Pool) (int, error) {
	n := int(p.Order())
	if n == 0 {
		return 0, nil
	}
	dist := adjacencyMatrix(p)
	floydWarshallInPlace(dist, n)

	max := int32(0)
	for i := 0; i < n; i++ {
		base := i * n
		for j := 0; j < n; j++ {
			d := dist[base+j]
			if d >= unreachable {
				return 0, statsErrorf("diameter", "vertices %d and %d", ErrDisconnected, i, j)
			}
			if d > max {
				max = d
			}
		}
	}
	return int(max), nil
}
