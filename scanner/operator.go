// File: operator.go
// Role: Operator, the uniform shape scanner.Scanner drives every class
// family through, and the per-family adapters wrapping ops' differently-
// shaped Expand/Reduce signatures (some return one new vertex, some a
// pair, some a wheel) into that one shape.

package scanner

import (
	"github.com/katalvlaran/planargen/core"
	"github.com/katalvlaran/planargen/ops"
)

// Operator is one (find_extensions, expand, reduce, legal) kernel, spec.md
// §4.3's "operator pair acting on a local neighbourhood of O(1) half-
// edges" lifted to a common interface. handle is whatever Expand returns
// to identify the structure it built (a vertex id, a tuple of vertex ids,
// ...); Reduce receives it back unchanged.
type Operator struct {
	Name           string
	FindExtensions func(p *core.Pool) ([]core.HalfEdgeID, error)
	Expand         func(p *core.Pool, site core.HalfEdgeID) (handle interface{}, err error)
	Reduce         func(p *core.Pool, handle interface{}) error
	Legal          func(p *core.Pool, ref core.HalfEdgeID) (bool, error)
}

// pair, triple, and quad are the fixed-size handle shapes multi-vertex
// operators (B/P/P2, S, P3) hand back to Reduce.
type pair [2]core.VertexID
type triple [3]core.VertexID
type quad [4]core.VertexID

// wheelHandle is C's handle: a central vertex plus the five-vertex rim.
type wheelHandle struct {
	Centre core.VertexID
	Wheel  [5]core.VertexID
}

// oneVertex adapts a single-new-vertex operator family (E3/E4/E5, Four,
// Five, A, P0, P1, Boundary).
func oneVertex(
	name string,
	find func(p *core.Pool) ([]core.HalfEdgeID, error),
	expand func(p *core.Pool, site core.HalfEdgeID) (core.VertexID, error),
	reduce func(p *core.Pool, z core.VertexID) error,
	legal func(p *core.Pool, ref core.HalfEdgeID) (bool, error),
) Operator {
	return Operator{
		Name:           name,
		FindExtensions: find,
		Expand: func(p *core.Pool, site core.HalfEdgeID) (interface{}, error) {
			z, err := expand(p, site)
			return z, err
		},
		Reduce: func(p *core.Pool, h interface{}) error {
			return reduce(p, h.(core.VertexID))
		},
		Legal: legal,
	}
}

// twoVertex adapts a paired-new-vertex operator family (B, P, P2, Q).
func twoVertex(
	name string,
	find func(p *core.Pool) ([]core.HalfEdgeID, error),
	expand func(p *core.Pool, site core.HalfEdgeID) (core.VertexID, core.VertexID, error),
	reduce func(p *core.Pool, x, y core.VertexID) error,
	legal func(p *core.Pool, ref core.HalfEdgeID) (bool, error),
) Operator {
	return Operator{
		Name:           name,
		FindExtensions: find,
		Expand: func(p *core.Pool, site core.HalfEdgeID) (interface{}, error) {
			x, y, err := expand(p, site)
			return pair{x, y}, err
		},
		Reduce: func(p *core.Pool, h interface{}) error {
			hp := h.(pair)
			return reduce(p, hp[0], hp[1])
		},
		Legal: legal,
	}
}

// threeVertex adapts S, whose Expand/Reduce already take/return a literal
// (p1, p2, p3) triple.
func threeVertex(
	name string,
	find func(p *core.Pool) ([]core.HalfEdgeID, error),
	expand func(p *core.Pool, site core.HalfEdgeID) (core.VertexID, core.VertexID, core.VertexID, error),
	reduce func(p *core.Pool, p1, p2, p3 core.VertexID) error,
	legal func(p *core.Pool, ref core.HalfEdgeID) (bool, error),
) Operator {
	return Operator{
		Name:           name,
		FindExtensions: find,
		Expand: func(p *core.Pool, site core.HalfEdgeID) (interface{}, error) {
			a, b, c, err := expand(p, site)
			return triple{a, b, c}, err
		},
		Reduce: func(p *core.Pool, h interface{}) error {
			t := h.(triple)
			return reduce(p, t[0], t[1], t[2])
		},
		Legal: legal,
	}
}

// fourVertex adapts P3, whose Expand/Reduce take/return a [4]VertexID.
func fourVertex(
	name string,
	find func(p *core.Pool) ([]core.HalfEdgeID, error),
	expand func(p *core.Pool, site core.HalfEdgeID) ([4]core.VertexID, error),
	reduce func(p *core.Pool, q [4]core.VertexID) error,
	legal func(p *core.Pool, ref core.HalfEdgeID) (bool, error),
) Operator {
	return Operator{
		Name:           name,
		FindExtensions: find,
		Expand: func(p *core.Pool, site core.HalfEdgeID) (interface{}, error) {
			q, err := expand(p, site)
			return quad(q), err
		},
		Reduce: func(p *core.Pool, h interface{}) error {
			return reduce(p, [4]core.VertexID(h.(quad)))
		},
		Legal: legal,
	}
}

// wheel adapts C, whose Expand/Reduce take/return a centre plus a
// [5]VertexID rim.
func wheel(
	name string,
	find func(p *core.Pool) ([]core.HalfEdgeID, error),
	expand func(p *core.Pool, site core.HalfEdgeID) (core.VertexID, [5]core.VertexID, error),
	reduce func(p *core.Pool, centre core.VertexID, w [5]core.VertexID) error,
	legal func(p *core.Pool, ref core.HalfEdgeID) (bool, error),
) Operator {
	return Operator{
		Name:           name,
		FindExtensions: find,
		Expand: func(p *core.Pool, site core.HalfEdgeID) (interface{}, error) {
			c, w, err := expand(p, site)
			return wheelHandle{Centre: c, Wheel: w}, err
		},
		Reduce: func(p *core.Pool, h interface{}) error {
			wh := h.(wheelHandle)
			return reduce(p, wh.Centre, wh.Wheel)
		},
		Legal: legal,
	}
}

// familyOperators returns the fixed-priority operator table for class
// (spec.md §4.4 "operator priority", e.g. mindeg-5's A > B > C).
func familyOperators(class ops.Class) []Operator {
	switch class {
	case ops.Triangulation:
		return []Operator{
			oneVertex("E3", ops.FindExtensionsE3, ops.ExpandE3, ops.ReduceE3, ops.LegalE3),
			oneVertex("E4", ops.FindExtensionsE4, ops.ExpandE4, ops.ReduceE3, ops.LegalE3),
			oneVertex("E5", ops.FindExtensionsE5, ops.ExpandE5, ops.ReduceE3, ops.LegalE3),
		}
	case ops.Apollonian:
		return []Operator{
			oneVertex("E3", ops.FindExtensionsE3, ops.ApollonianExpand, ops.ReduceE3, ops.LegalE3),
		}
	case ops.MinDeg4Triangulation:
		return []Operator{
			oneVertex("Four", ops.FindExtensionsFour, ops.ExpandFour, ops.ReduceFour, ops.LegalFour),
			oneVertex("Five", ops.FindExtensionsFive, ops.ExpandFive, ops.ReduceFive, ops.LegalFive),
			threeVertex("S", ops.FindExtensionsS, ops.ExpandS, ops.ReduceS, ops.LegalS),
		}
	case ops.MinDeg5Triangulation:
		return []Operator{
			oneVertex("A", ops.FindExtensionsA, ops.ExpandA, ops.ReduceA, ops.LegalA),
			twoVertex("B", ops.FindExtensionsB, ops.ExpandB, ops.ReduceB, ops.LegalB),
			wheel("C", ops.FindExtensionsC, ops.ExpandC, ops.ReduceC, ops.LegalC),
		}
	case ops.EulerianTriangulation, ops.Bipartite:
		return []Operator{
			twoVertex("P", ops.FindExtensionsP, ops.ExpandP, ops.ReduceP, ops.LegalP),
			twoVertex("Q", ops.FindExtensionsQ, ops.ExpandQ, ops.ReduceQ, ops.LegalQ),
		}
	case ops.Quadrangulation3Connected, ops.QuadrangulationGeneral:
		return []Operator{
			oneVertex("P0", ops.FindExtensionsP0, ops.ExpandP0, ops.ReduceP0, ops.LegalP0),
			oneVertex("P1", ops.FindExtensionsP1, ops.ExpandP1, ops.ReduceP1, ops.LegalP1),
			twoVertex("P2", ops.FindExtensionsP2, ops.ExpandP2, ops.ReduceP2, ops.LegalP2),
			fourVertex("P3", ops.FindExtensionsP3, ops.ExpandP3, ops.ReduceP3, ops.LegalP3),
		}
	case ops.Disk:
		return []Operator{
			oneVertex("Boundary", ops.FindExtensionsBoundary, ops.ExpandBoundary, ops.ReduceBoundary, ops.LegalBoundary),
		}
	default:
		return nil
	}
}
