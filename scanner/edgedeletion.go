// File: edgedeletion.go
// Role: EdgeDeletionScanner, the Polytope/General "Polytope phase" of
// spec.md §4.3: a second, reverse-direction scan over the triangulations
// of a fixed target order n, recursively deleting edges.
//
// Every other family in this package grows the graph: Expand is the
// forward step, the legality test runs on the graph Expand just produced,
// Reduce is recursion's undo. Here the graph is already at its final
// order before this scan starts, so deletion is the forward step instead:
// ops.ReducePolytope descends the tree, the legality test runs on the
// now-smaller graph (exactly mirroring the growing case), and
// ops.ExpandPolytope - re-inserting the just-deleted edge - is the undo.
package scanner

import (
	"github.com/katalvlaran/planargen/canon"
	"github.com/katalvlaran/planargen/core"
	"github.com/katalvlaran/planargen/ops"
)

// EdgeRange is the `-e a:b` CLI constraint (spec.md §6): only graphs whose
// undirected edge count falls in [Min, Max] are emitted. Max <= 0 means
// unbounded.
type EdgeRange struct {
	Min, Max int
}

func (r EdgeRange) allows(size int) bool {
	if size < r.Min {
		return false
	}
	if r.Max > 0 && size > r.Max {
		return false
	}
	return true
}

// EdgeDeletionScanner runs the Polytope/General phase against one fixed-
// order triangulation at a time: every triangulation the Triangulation
// scan emits at order n is fed in turn to Run, which then performs the
// reverse edge-deletion descent over it.
type EdgeDeletionScanner struct {
	legal   func(p *core.Pool, site core.HalfEdgeID) (bool, error)
	edges   EdgeRange
	maxFace int // `-f k`; 0 means unconstrained
	sink    Sink
}

// NewEdgeDeletionScanner builds the phase-2 scanner. general selects
// ops.LegalGeneral (no connectivity floor) over ops.LegalPolytope (3-
// connected floor). maxFace <= 0 disables the `-f k` face-size cap.
//
// The res/mod split of spec.md §4.6 is defined over the vertex-growing
// recursion's splitlevel; this phase never changes vertex order, so it
// takes no Splitter - res/mod is applied during phase 1 (the
// Triangulation scan that produces this scanner's root graphs) instead.
func NewEdgeDeletionScanner(general bool, edges EdgeRange, maxFace int, sink Sink) *EdgeDeletionScanner {
	legal := ops.LegalPolytope
	if general {
		legal = ops.LegalGeneral
	}
	return &EdgeDeletionScanner{legal: legal, edges: edges, maxFace: maxFace, sink: sink}
}

// Run walks the edge-deletion tree rooted at p (a triangulation already at
// the target vertex order). Every intermediate graph whose edge count
// falls in the configured range is emitted, including the root
// triangulation itself.
func (s *EdgeDeletionScanner) Run(p *core.Pool) error {
	if err := s.emitIfInRange(p); err != nil {
		return err
	}
	return s.descend(p)
}

func (s *EdgeDeletionScanner) descend(p *core.Pool) error {
	sites, err := ops.FindDeletableEdges(p)
	if err != nil {
		return scannerErrorf("descend", "enumerating deletable edges", err)
	}

	for _, ref := range sites {
		if s.maxFace > 0 {
			merged := p.FaceSize(ref) + p.FaceSize(p.Twin(ref)) - 2
			if merged > s.maxFace {
				continue
			}
		}

		a, c := p.Start(ref), p.End(ref)
		if err := ops.ReducePolytope(p, ref); err != nil {
			return scannerErrorf("descend", "deleting edge %d", err, ref)
		}
		site := corner(p, a, c)

		ok, legalErr := s.legal(p, site)
		if legalErr == nil && ok {
			if err := s.emitIfInRange(p); err != nil {
				legalErr = err
			} else if p.Size() > s.edges.Min {
				// Every further deletion can only shrink the edge count
				// further, so once it has dropped to the range floor
				// there is nothing left to gain by recursing deeper.
				legalErr = s.descend(p)
			}
		}

		if _, err := ops.ExpandPolytope(p, site); err != nil {
			return scannerErrorf("descend", "restoring edge %d", err, ref)
		}
		if legalErr != nil {
			return legalErr
		}
	}
	return nil
}

// corner locates, after a ReducePolytope deletion merges the two faces a
// and c used to straddle, the face-corner half-edge ExpandPolytope needs
// to re-split that face back along the same two vertices.
func corner(p *core.Pool, a, c core.VertexID) core.HalfEdgeID {
	for _, f := range p.Faces() {
		h := f.Start
		for i := 0; i < f.Size; i++ {
			if p.Start(h) == a && p.End(p.FaceNext(h)) == c {
				return h
			}
			h = p.FaceNext(h)
		}
	}
	return core.NilHalfEdge
}

func (s *EdgeDeletionScanner) emitIfInRange(p *core.Pool) error {
	if s.sink == nil || !s.edges.allows(p.Size()) {
		return nil
	}
	colour := ops.UniformColour(p)
	res, err := canon.Canon(p, colour)
	if err != nil {
		return scannerErrorf("emitIfInRange", "computing canonical form", err)
	}
	aut := canon.FromResult(p, colour, res)
	return s.sink(p, aut)
}
