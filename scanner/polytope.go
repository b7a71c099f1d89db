// File: polytope.go
// Role: RunPolytope, the composed procedure wiring spec.md §4.3's two
// phases together: grow to the target vertex order by the ordinary
// Triangulation scan, then for every triangulation it reaches, descend
// the edge-deletion tree (edgedeletion.go).

package scanner

import (
	"github.com/katalvlaran/planargen/canon"
	"github.com/katalvlaran/planargen/core"
	"github.com/katalvlaran/planargen/ops"
)

// RunPolytope drives both phases of the Polytope/General families: seed
// must already be at its class's seed order (K4, per seed.Seed). general
// selects the General class (no connectivity floor) over Polytope
// (3-connected floor).
//
// Phase 1 reuses the ordinary Triangulation operator table so every
// simple triangulation of order target is reached exactly once; phase 2
// runs an EdgeDeletionScanner over each one. Splitting by res/mod applies
// only to phase 1 - concatenating the outputs of every residue still
// covers the full edge-deletion tree for every phase-1 triangulation,
// since phase 2 is deterministic given its root.
func RunPolytope(seed *core.Pool, target int, general bool, edges EdgeRange, maxFace int, splitter *Splitter, sink Sink) error {
	phase2Sink := func(p *core.Pool, _ canon.Automorphisms) error {
		eds := NewEdgeDeletionScanner(general, edges, maxFace, sink)
		return eds.Run(p)
	}

	triScanner, err := New(ops.Triangulation, target, splitter, phase2Sink)
	if err != nil {
		return scannerErrorf("RunPolytope", "building phase-1 triangulation scan", err)
	}
	return triScanner.Run(seed)
}
