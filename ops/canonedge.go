// File: canonedge.go
// Role: thin per-family wrapper around canon.CanonEdge using the uniform
// colouring most operator families share.

package ops

import (
	"github.com/katalvlaran/planargen/canon"
	"github.com/katalvlaran/planargen/core"
)

// canonEdgeOf reports whether ref is a canonical-construction-path parent
// among candidates, under the uniform colouring.
func canonEdgeOf(p *core.Pool, ref core.HalfEdgeID, candidates []core.HalfEdgeID) (bool, error) {
	return canon.CanonEdge(p, uniformColour(p), ref, candidates)
}
