// File: flow.go
// Role: a small integer-capacity Dinic max-flow solver, the engine behind
// KConnected's vertex-split reduction. Adapted from flow.Dinic's level-
// graph-plus-blocking-flow structure (BFS assigns levels, a DFS with a
// per-node resume iterator pushes a blocking flow along the level graph,
// repeat until the sink is unreachable), specialized to int32 node ids and
// integer unit/unbounded capacities instead of float64-weighted string-
// keyed graphs, and stopped early once the flow reaches the bound
// KConnected actually needs.

package connectivity

const infCap = 1 << 30

type arc struct {
	to      int32
	cap     int32
	reverse int32 // index, in graph[to], of this arc's reverse
}

// network is a directed graph over 2*n nodes (the in/out split of n
// original vertices), built fresh for each KConnected probe.
type network struct {
	graph [][]arc
}

func newNetwork(nodes int32) *network {
	return &network{graph: make([][]arc, nodes)}
}

func (g *network) addArc(from, to int32, cap int32) {
	g.graph[from] = append(g.graph[from], arc{to: to, cap: cap, reverse: int32(len(g.graph[to]))})
	g.graph[to] = append(g.graph[to], arc{to: from, cap: 0, reverse: int32(len(g.graph[from]) - 1)})
}

// levels runs a single BFS from source over residual arcs, returning each
// node's distance (-1 if unreached) - flow.Dinic's level-graph step.
func (g *network) levels(source int32) []int32 {
	level := make([]int32, len(g.graph))
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int32{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, a := range g.graph[u] {
			if a.cap > 0 && level[a.to] < 0 {
				level[a.to] = level[u] + 1
				queue = append(queue, a.to)
			}
		}
	}
	return level
}

// blockingPush is flow.Dinic's dfsDinicPush, adapted to the arc-slice
// representation: it walks only edges that advance the level graph by
// exactly one, resuming each node from iter[u] across calls within the
// same level graph so no arc is rescanned twice in one blocking-flow
// phase.
func (g *network) blockingPush(u, sink int32, bound int32, level []int32, iter []int) int32 {
	if u == sink {
		return bound
	}
	for ; iter[u] < len(g.graph[u]); iter[u]++ {
		a := &g.graph[u][iter[u]]
		if a.cap <= 0 || level[a.to] != level[u]+1 {
			continue
		}
		want := bound
		if a.cap < want {
			want = a.cap
		}
		got := g.blockingPush(a.to, sink, want, level, iter)
		if got > 0 {
			a.cap -= got
			g.graph[a.to][a.reverse].cap += got
			return got
		}
	}
	return 0
}

// maxFlow runs Dinic's algorithm from source to sink, stopping early once
// the flow reaches cap (KConnected never needs more than k units).
//
// Complexity: O(cap) blocking-flow phases, each O(nodes + arcs).
func (g *network) maxFlow(source, sink int32, cap int) int {
	flow := 0
	for flow < cap {
		level := g.levels(source)
		if level[sink] < 0 {
			break
		}
		iter := make([]int, len(g.graph))
		for flow < cap {
			pushed := g.blockingPush(source, sink, int32(cap-flow), level, iter)
			if pushed == 0 {
				break
			}
			flow += int(pushed)
		}
	}
	return flow
}
