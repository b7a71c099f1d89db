// File: code.go
// Role: canonical code construction (the BFS-in-rotation traversal).

package canon

import (
	"github.com/katalvlaran/planargen/core"
)

// terminator separates successive vertex records in a Code. Vertex numbers
// start at 1 and shifted colours (colour+n) are always > n >= 1, so 0 is
// free to use as a terminator without ambiguity (design note "canonical-
// code layout").
const terminator int32 = 0

// Code is the canonical code stream: a single tagged sequence mixing
// vertex numbers and colour tokens (colour shifted by n), exactly as the
// reference implementation does, with comparisons total because every
// token in the stream is just an int32.
type Code []int32

// Compare returns -1, 0, or 1 as a < b, a == b, a > b under lexicographic
// order, treating a shorter-but-equal-prefix code as smaller (this never
// actually happens between two codes of the same graph order, since every
// vertex record is terminated, but Compare is defined totally regardless).
func (a Code) Compare(b Code) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// BuildCode runs the canonical BFS-in-rotation traversal from start and
// returns the resulting Code. colour assigns a positive colour to every
// vertex (bounded above by int32 max minus n so colour and vertex-number
// tokens share a domain without collision once colour is shifted by n,
// per spec.md §4.2). If mirror is false the traversal walks Next (clockwise,
// orientation-preserving); if true it walks Prev (orientation-reversing).
//
// Complexity: O(total half-edges).
func BuildCode(p *core.Pool, start core.HalfEdgeID, colour []int32, mirror bool) Code {
	n := len(colour)
	step := p.Next
	if mirror {
		step = p.Prev
	}

	number := make(map[core.VertexID]int32, n)
	entry := make(map[int32]core.HalfEdgeID, n)

	startV := p.Start(start)
	number[startV] = 1
	entry[1] = start

	next := int32(2)
	if endV := p.End(start); endV != startV { // not a loop
		number[endV] = next
		entry[next] = p.Twin(start)
		next++
	}

	code := make(Code, 0, 4*n)
	for k := int32(1); k < next; k++ {
		e0 := entry[k]
		h := e0
		for {
			nb := p.End(h)
			if num, seen := number[nb]; seen {
				code = append(code, num)
			} else {
				number[nb] = next
				entry[next] = p.Twin(h)
				code = append(code, int32(n)+colour[nb])
				next++
			}
			h = step(h)
			if h == e0 {
				break
			}
		}
		code = append(code, terminator)
	}

	return code
}
