// File: automorphism.go
// Role: materialise the automorphism group as the numbering[i][k] array
// described in spec.md §4.2 "Automorphism output format".

package canon

import (
	"github.com/katalvlaran/planargen/core"
)

// Automorphisms holds one canonical traversal per automorphism of the
// coloured embedding. Numbering[i] is the half-edge visitation order
// produced by the i-th canonical starting half-edge; rows [0, NbOp) are
// orientation-preserving, rows [NbOp, len(Numbering)) are orientation-
// reversing. For any two rows i, j and any position k, Numbering[i][k] and
// Numbering[j][k] lie in the same orbit under Aut(G) - that is exactly
// what lets ops.FindExtensions pick one representative site per orbit
// instead of enumerating every half-edge.
type Automorphisms struct {
	Numbering [][]core.HalfEdgeID
	NbOp      int // number of orientation-preserving rows (rows [0,NbOp))
}

// Size is the automorphism group order (orientation-preserving count plus
// orientation-reversing count).
func (a Automorphisms) Size() int { return len(a.Numbering) }

// Chiral reports whether the embedding has no orientation-reversing
// automorphism, i.e. NbOp == Size(): emit.Emitter consults this to decide
// whether -o must emit the mirror copy separately (spec.md §4.7).
func (a Automorphisms) Chiral() bool { return a.NbOp == len(a.Numbering) }

// FromResult walks every minimizing half-edge found by Canon and records
// its full traversal order, producing the numbering[i][k] table.
//
// Complexity: O(|Aut(G)| * total half-edges).
func FromResult(p *core.Pool, colour []int32, r Result) Automorphisms {
	a := Automorphisms{NbOp: len(r.AOr)}
	a.Numbering = make([][]core.HalfEdgeID, 0, r.Total)

	for _, h := range r.AOr {
		a.Numbering = append(a.Numbering, visitOrder(p, h, colour, false))
	}
	for _, h := range r.AMir {
		a.Numbering = append(a.Numbering, visitOrder(p, h, colour, true))
	}

	return a
}

// visitOrder replays BuildCode's traversal, but records the half-edge
// visited at each step (rather than the code token emitted), giving the
// raw numbering[i] row.
func visitOrder(p *core.Pool, start core.HalfEdgeID, colour []int32, mirror bool) []core.HalfEdgeID {
	n := len(colour)
	step := p.Next
	if mirror {
		step = p.Prev
	}

	number := make(map[core.VertexID]int32, n)
	entry := make(map[int32]core.HalfEdgeID, n)
	order := make([]core.HalfEdgeID, 0, 2*n)

	startV := p.Start(start)
	number[startV] = 1
	entry[1] = start

	next := int32(2)
	if endV := p.End(start); endV != startV {
		number[endV] = next
		entry[next] = p.Twin(start)
		next++
	}

	for k := int32(1); k < next; k++ {
		e0 := entry[k]
		h := e0
		for {
			order = append(order, h)
			if _, seen := number[p.End(h)]; !seen {
				number[p.End(h)] = next
				entry[next] = p.Twin(h)
				next++
			}
			h = step(h)
			if h == e0 {
				break
			}
		}
	}

	return order
}
