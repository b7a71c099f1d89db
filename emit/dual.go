// File: dual.go
// Role: the planar dual construction backing the `-d` emission modifier
// (spec.md §6). Faces of p become the dual's vertices; every primal
// half-edge h contributes one dual edge between the face on h's side and
// the face on Twin(h)'s side, in the cyclic order the face's own boundary
// walk visits them - the standard "rotate around each face" dual
// embedding construction.

package emit

import "github.com/katalvlaran/planargen/core"

// Dual builds the planar dual of p as a fresh core.Pool. The dual may
// have multi-edges (two faces sharing more than one boundary edge) or
// loops (a face with two boundary edges on either side of the same
// vertex); core.Bootstrap supports both.
func Dual(p *core.Pool) *core.Pool {
	faces := p.Faces()

	faceOf := make(map[core.HalfEdgeID]int, p.Size()*2)
	for fi, f := range faces {
		h := f.Start
		for i := 0; i < f.Size; i++ {
			faceOf[h] = fi
			h = p.FaceNext(h)
		}
	}

	rot := make([][]core.VertexID, len(faces))
	for fi, f := range faces {
		h := f.Start
		for i := 0; i < f.Size; i++ {
			neighbour := faceOf[p.Twin(h)]
			rot[fi] = append(rot[fi], core.VertexID(neighbour))
			h = p.FaceNext(h)
		}
	}

	return core.Bootstrap(len(faces), rot)
}
