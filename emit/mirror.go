// File: mirror.go
// Role: the orientation-reversed copy backing `-o` (spec.md §6: "emit
// each chiral graph twice (both orientations)"). Reversing the rotation
// order at every vertex flips the embedding's orientation without
// changing the underlying graph.

package emit

import "github.com/katalvlaran/planargen/core"

// Mirror builds p's orientation-reversed copy: every vertex's rotation
// list is reversed, everything else (adjacency, face structure up to
// orientation) stays the same.
func Mirror(p *core.Pool) *core.Pool {
	n := int(p.Order())
	rot := make([][]core.VertexID, n)
	for v := 0; v < n; v++ {
		fwd := p.Rotation(core.VertexID(v))
		rev := make([]core.VertexID, len(fwd))
		for i, h := range fwd {
			rev[len(fwd)-1-i] = p.End(h)
		}
		rot[v] = rev
	}
	return core.Bootstrap(n, rot)
}
