// File: orbit.go
// Role: orbit-based site dedupe shared by every family's FindExtensions
// (spec.md §4.4 "orbit-based site enumeration"): instead of visiting every
// half-edge, each family enumerates candidate sites structurally and this
// helper keeps exactly one representative per Aut(G)-orbit.

package ops

import (
	"github.com/katalvlaran/planargen/canon"
	"github.com/katalvlaran/planargen/core"
)

// dedupeByOrbit keeps one representative half-edge per automorphism orbit
// among candidates, in input order. It relies on canon.Automorphisms'
// documented property that Numbering[i][k] for varying i and fixed k all
// lie in the same orbit: row 0 locates each half-edge's position, and the
// minimum half-edge across all rows at that position is the orbit's
// canonical representative.
//
// Complexity: O(|Aut(G)| * total half-edges) for the one-time Canon/
// FromResult call, then O(|candidates|) to filter.
func dedupeByOrbit(p *core.Pool, colour []int32, candidates []core.HalfEdgeID) ([]core.HalfEdgeID, error) {
	if len(candidates) <= 1 {
		return candidates, nil
	}

	r, err := canon.Canon(p, colour)
	if err != nil {
		return nil, opsErrorf("dedupeByOrbit", "computing canonical form", err)
	}
	aut := canon.FromResult(p, colour, r)
	if aut.Size() == 0 || len(aut.Numbering[0]) == 0 {
		return candidates, nil
	}

	posOf := make(map[core.HalfEdgeID]int, len(aut.Numbering[0]))
	for pos, h := range aut.Numbering[0] {
		posOf[h] = pos
	}

	rep := func(h core.HalfEdgeID) core.HalfEdgeID {
		pos, ok := posOf[h]
		if !ok {
			return h
		}
		best := h
		for _, row := range aut.Numbering {
			if pos < len(row) && row[pos] < best {
				best = row[pos]
			}
		}
		return best
	}

	seen := make(map[core.HalfEdgeID]bool, len(candidates))
	out := make([]core.HalfEdgeID, 0, len(candidates))
	for _, h := range candidates {
		r := rep(h)
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, h)
	}
	return out, nil
}
