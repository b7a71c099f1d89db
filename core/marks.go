// File: marks.go
// Role: the generational "visited" flag (design note "Generational marks").
//
// A monotone counter (markGen) is bumped on ClearMarks; a half-edge is
// considered marked iff its stored mark equals markGen. This makes
// "clear all marks" O(1) amortised instead of O(half-edges) for Faces
// (faces.go), which clears the marks on every call and is their only
// user in this module. When markGen would overflow int32, the
// mark array is physically zeroed and the counter resets to 1 - still O(n)
// but only once per ~2^31 clears.

package core

import "math"

// ClearMarks makes every half-edge "unmarked" in O(1) amortised time.
func (p *Pool) ClearMarks() {
	if p.markGen == math.MaxInt32 {
		for i := range p.he {
			p.he[i].mark = 0
		}
		p.markGen = 0
	}
	p.markGen++
}

// SetMark marks e as visited under the current generation.
func (p *Pool) SetMark(e HalfEdgeID) { p.he[e].mark = p.markGen }

// IsMarked reports whether e was marked since the last ClearMarks.
func (p *Pool) IsMarked(e HalfEdgeID) bool { return p.he[e].mark == p.markGen }

// Index exposes the scratch "index" field. canon keeps its BFS numbering
// in maps and does not use it.
func (p *Pool) Index(e HalfEdgeID) int32 { return p.he[e].index }

// SetIndex sets the scratch "index" field.
func (p *Pool) SetIndex(e HalfEdgeID, v int32) { p.he[e].index = v }

// Scratch exposes the general-purpose scratch field. The operators in ops
// do not use it.
func (p *Pool) Scratch(e HalfEdgeID) int32 { return p.he[e].scratch }

// SetScratch sets the scratch field.
func (p *Pool) SetScratch(e HalfEdgeID, v int32) { p.he[e].scratch = v }

// LeftFaceSize exposes the per-half-edge left-face-size field. The
// polytope and bipartite code does not maintain it; it holds whatever
// SetLeftFaceSize last stored.
func (p *Pool) LeftFaceSize(e HalfEdgeID) int32 { return p.he[e].leftFaceSize }

// SetLeftFaceSize sets that field.
func (p *Pool) SetLeftFaceSize(e HalfEdgeID, v int32) { p.he[e].leftFaceSize = v }
