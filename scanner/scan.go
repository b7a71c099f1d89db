// File: scan.go
// Role: Scanner, the generic recursive procedure of spec.md §4.5 driving
// the nine vertex-growing classes through one shared operator table.

package scanner

import (
	"github.com/katalvlaran/planargen/canon"
	"github.com/katalvlaran/planargen/core"
	"github.com/katalvlaran/planargen/ops"
)

// Sink receives one accepted graph at the target order, paired with its
// automorphism group - spec.md §4.7's (graph, nbtot, nbop) hand-off to the
// emitter, minus connectivity-class (the caller already knows its own
// class and tags output accordingly).
type Sink func(p *core.Pool, aut canon.Automorphisms) error

// Scanner walks find_extensions -> expand -> legality -> recurse -> reduce
// down to a fixed target order for one class's operator table.
type Scanner struct {
	operators []Operator
	target    int
	splitter  *Splitter
	sink      Sink
}

// New builds a Scanner for class, stopping recursion at target. splitter
// may be nil, which disables res/mod splitting entirely (equivalent to
// mod=1).
func New(class ops.Class, target int, splitter *Splitter, sink Sink) (*Scanner, error) {
	table := familyOperators(class)
	if table == nil {
		return nil, scannerErrorf("New", "class %v", ErrUnsupportedClass, class)
	}
	if splitter == nil {
		splitter, _ = NewSplitter(target, 0, 1)
	}
	return &Scanner{operators: table, target: target, splitter: splitter, sink: sink}, nil
}

// Run executes the recursion starting from p (already at its class's seed
// or special-case order) until every reachable graph at s.target has been
// handed to the sink.
func (s *Scanner) Run(p *core.Pool) error {
	return s.descend(p)
}

// descend implements spec.md §4.5 steps 1-4 against the current graph p.
func (s *Scanner) descend(p *core.Pool) error {
	order := int(p.Order())
	if order == s.target {
		return s.emit(p)
	}

	for _, op := range s.operators {
		sites, err := op.FindExtensions(p)
		if err != nil {
			return scannerErrorf("descend", "enumerating %s sites", err, op.Name)
		}

		for _, site := range sites {
			prevOrder := order
			handle, err := op.Expand(p, site)
			if err != nil {
				return scannerErrorf("descend", "expanding %s at site %d", err, op.Name, site)
			}
			newOrder := int(p.Order())

			ref, accepted, legalErr := s.acceptedRef(p, op, handle)
			if legalErr == nil && accepted && s.splitter.ShouldDescend(prevOrder, newOrder) {
				legalErr = s.descend(p)
			}

			if err := op.Reduce(p, handle); err != nil {
				return scannerErrorf("descend", "reducing %s at site %d", err, op.Name, ref)
			}
			if legalErr != nil {
				return scannerErrorf("descend", "processing %s at site %d", legalErr, op.Name, site)
			}
		}
	}
	return nil
}

// acceptedRef resolves the reduction reference half-edge out of handle (an
// Operator.Expand return value, see operator.go) and runs Legal against
// it. The reference edge for every handle shape ops defines is the new
// half-edge that owns the just-created structure's canonical anchor;
// reusing Expand's own return value keeps this resolution a single type
// switch rather than per-family plumbing.
func (s *Scanner) acceptedRef(p *core.Pool, op Operator, handle interface{}) (core.HalfEdgeID, bool, error) {
	ref, err := referenceEdge(p, handle)
	if err != nil {
		return core.NilHalfEdge, false, err
	}
	ok, err := op.Legal(p, ref)
	return ref, ok, err
}

// referenceEdge recovers the canonical-test reference half-edge from an
// Expand handle: the new vertex's first edge for single-vertex handles,
// or the first of the new vertices' first edges for multi-vertex ones.
func referenceEdge(p *core.Pool, handle interface{}) (core.HalfEdgeID, error) {
	switch h := handle.(type) {
	case core.VertexID:
		return p.FirstEdge(h), nil
	case pair:
		return p.FirstEdge(h[0]), nil
	case triple:
		return p.FirstEdge(h[0]), nil
	case quad:
		return p.FirstEdge(h[0]), nil
	case wheelHandle:
		return p.FirstEdge(h.Centre), nil
	default:
		return core.NilHalfEdge, scannerErrorf("referenceEdge", "unhandled handle type %T", ErrUnsupportedClass, handle)
	}
}

// emit computes the automorphism group of the graph just reached and
// passes it to the sink.
func (s *Scanner) emit(p *core.Pool) error {
	if s.sink == nil {
		return nil
	}
	colour := ops.UniformColour(p)
	res, err := canon.Canon(p, colour)
	if err != nil {
		return scannerErrorf("emit", "computing canonical form", err)
	}
	aut := canon.FromResult(p, colour, res)
	return s.sink(p, aut)
}
