// File: canon.go
// Role: the canon test (spec.md §4.2 steps 1-4) and the derived
// canonical-edge tests used by ops' canonical-construction-path pruning.

package canon

import (
	"github.com/katalvlaran/planargen/core"
)

// Result is the outcome of Canon: the minimal code found, the half-edges
// that attain it (split by traversal orientation), and their combined
// count - the raw material for Automorphisms.
type Result struct {
	Code  Code
	AOr   []core.HalfEdgeID // orientation-preserving minimizers
	AMir  []core.HalfEdgeID // orientation-reversing minimizers
	Total int
}

// candidates computes the set S of spec.md §4.2 step 2: half-edges
// starting at a minimum-colour vertex whose endpoint attains that vertex's
// own maximum neighbour colour. This is the heuristic that keeps Canon
// cheap by discarding, up front, any half-edge that cannot possibly start
// the lexicographically smallest code.
func candidates(p *core.Pool, colour []int32) []core.HalfEdgeID {
	n := int(p.Order())
	d := int32(1) << 30
	for v := 0; v < n; v++ {
		if colour[v] < d {
			d = colour[v]
		}
	}

	var cand []core.HalfEdgeID
	for v := 0; v < n; v++ {
		if colour[v] != d {
			continue
		}
		first := p.FirstEdge(core.VertexID(v))
		if first == core.NilHalfEdge {
			continue
		}
		maxNb := int32(-1)
		for h := first; ; {
			if c := colour[p.End(h)]; c > maxNb {
				maxNb = c
			}
			h = p.Next(h)
			if h == first {
				break
			}
		}
		for h := first; ; {
			if colour[p.End(h)] == maxNb {
				cand = append(cand, h)
			}
			h = p.Next(h)
			if h == first {
				break
			}
		}
	}
	return cand
}

// Canon implements spec.md §4.2's canon test: it finds the
// lexicographically smallest code reachable from any candidate starting
// half-edge, in either traversal orientation, and returns every half-edge
// (tagged by orientation) that attains it.
//
// Complexity: O(|candidates| * total half-edges).
func Canon(p *core.Pool, colour []int32) (Result, error) {
	if len(colour) == 0 {
		return Result{}, canonErrorf("Canon", "colour slice is empty", ErrNoColour)
	}

	cand := candidates(p, colour)

	var best Code
	var aor, amir []core.HalfEdgeID

	consider := func(h core.HalfEdgeID, mirror bool) {
		code := BuildCode(p, h, colour, mirror)
		switch {
		case best == nil || code.Compare(best) < 0:
			best = code
			if mirror {
				aor, amir = nil, []core.HalfEdgeID{h}
			} else {
				aor, amir = []core.HalfEdgeID{h}, nil
			}
		case code.Compare(best) == 0:
			if mirror {
				amir = append(amir, h)
			} else {
				aor = append(aor, h)
			}
		}
	}

	for _, h := range cand {
		consider(h, false)
		consider(h, true)
	}

	return Result{Code: best, AOr: aor, AMir: amir, Total: len(aor) + len(amir)}, nil
}

// CanonEdge is the single-orientation canonical-edge test: given a
// reference half-edge and the full set of candidate reduction edges for
// the operator that just ran, it reports whether ref's orientation-
// preserving code is not strictly beaten by any other candidate's (in
// either orientation) - i.e. whether ref is a valid canonical-construction-
// path parent for this child.
//
// Complexity: O(|candidates| * total half-edges).
func CanonEdge(p *core.Pool, colour []int32, ref core.HalfEdgeID, candidates []core.HalfEdgeID) (bool, error) {
	if len(candidates) == 0 {
		return false, canonErrorf("CanonEdge", "no candidates supplied", ErrEmptyCandidates)
	}
	found := false
	for _, c := range candidates {
		if c == ref {
			found = true
			break
		}
	}
	if !found {
		return false, canonErrorf("CanonEdge", "ref %d absent from candidate set", ErrRefNotCandidate, ref)
	}

	refCode := BuildCode(p, ref, colour, false)
	for _, c := range candidates {
		if c == ref {
			continue
		}
		if BuildCode(p, c, colour, false).Compare(refCode) < 0 {
			return false, nil
		}
		if BuildCode(p, c, colour, true).Compare(refCode) < 0 {
			return false, nil
		}
	}
	return true, nil
}

// CanonEdgeOriented is CanonEdge specialised for operators whose own
// colouring already distinguishes the two traversal orientations: nextPref
// is tested only against the Next-direction code, prevPref only against
// the Prev-direction code, halving the comparisons CanonEdge would do.
func CanonEdgeOriented(p *core.Pool, colour []int32, ref core.HalfEdgeID, nextPref, prevPref []core.HalfEdgeID) (bool, error) {
	all := append(append([]core.HalfEdgeID{}, nextPref...), prevPref...)
	if len(all) == 0 {
		return false, canonErrorf("CanonEdgeOriented", "no candidates supplied", ErrEmptyCandidates)
	}

	mirror := false
	for _, c := range prevPref {
		if c == ref {
			mirror = true
		}
	}

	refCode := BuildCode(p, ref, colour, mirror)

	for _, c := range nextPref {
		if c == ref {
			continue
		}
		if BuildCode(p, c, colour, false).Compare(refCode) < 0 {
			return false, nil
		}
	}
	for _, c := range prevPref {
		if c == ref {
			continue
		}
		if BuildCode(p, c, colour, true).Compare(refCode) < 0 {
			return false, nil
		}
	}
	return true, nil
}
