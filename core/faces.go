// File: faces.go
// Role: on-demand face recovery. Faces are not first-class (spec.md §3):
// they are recovered by walking a rotation-system cycle, and the resulting
// table is rebuilt whenever consulted rather than kept live through every
// surgery.

package core

// FaceNext walks from a half-edge to the next half-edge along the same
// face boundary: FN(e) = Prev(Twin(e)). Repeating FaceNext exactly
// FaceSize(e) times returns to e.
func (p *Pool) FaceNext(e HalfEdgeID) HalfEdgeID {
	return p.he[p.he[e].inv].prev
}

// FacePrev is the inverse walk: FP(e) = Twin(Next(e)).
func (p *Pool) FacePrev(e HalfEdgeID) HalfEdgeID {
	return p.he[p.he[e].next].inv
}

// FaceSize returns the length of the face bounded, on e's side, by walking
// FaceNext from e. For a live embedding this always terminates.
//
// Complexity: O(face length).
func (p *Pool) FaceSize(e HalfEdgeID) int {
	n := 1
	for f := p.FaceNext(e); f != e; f = p.FaceNext(f) {
		n++
	}
	return n
}

// Face is one recovered face: its starting half-edge and length.
type Face struct {
	Start HalfEdgeID
	Size  int
}

// Faces rebuilds the complete face table by marking every half-edge
// visited by a face walk. It is a diagnostic/emission helper, not a
// structure operators keep live - call it only when actually needed
// (§3 "Face list").
//
// Complexity: O(total half-edges).
func (p *Pool) Faces() []Face {
	p.ClearMarks()
	var faces []Face

	for e := HalfEdgeID(0); int(e) < len(p.he); e++ {
		if !p.he[e].live || p.IsMarked(e) {
			continue
		}
		size := 0
		for f := e; ; f = p.FaceNext(f) {
			p.SetMark(f)
			size++
			if p.FaceNext(f) == e {
				break
			}
		}
		faces = append(faces, Face{Start: e, Size: size})
	}

	return faces
}

// EulerCharacteristic reports n - m + f, which must equal 2 for any valid
// sphere embedding (spec.md §3 "Embedding validity").
func (p *Pool) EulerCharacteristic() int {
	return int(p.n) - p.m + len(p.Faces())
}
