// File: triangulation.go
// Role: E3/E4/E5, the expansion operators for ordinary 3-connected
// triangulations (spec.md §4.3 "Triangulations"), and ApollonianExpand,
// the E3-only restriction that generates Apollonian networks.

package ops

import "github.com/katalvlaran/planargen/core"

// uniformColour returns a colour vector assigning every vertex the same
// value, the colouring every triangulation family that does not need to
// distinguish vertex classes uses for canon.Canon/BuildCode.
func uniformColour(p *core.Pool) []int32 {
	c := make([]int32, p.Order())
	for i := range c {
		c[i] = 1
	}
	return c
}

// UniformColour exports uniformColour for collaborators outside ops (the
// scanner package's canon.Canon call at emission time) that need the same
// all-vertices-equal colouring ops itself uses throughout.
func UniformColour(p *core.Pool) []int32 {
	return uniformColour(p)
}

// fanCandidates lists every half-edge that can start a k-fan: one entry
// per (vertex, rotation position) pair whose vertex has degree >= k-1.
// Every candidate is structurally valid in a full triangulation, since any
// k-1 consecutive rotation entries span k-2 existing triangular faces.
func fanCandidates(p *core.Pool, k int) []core.HalfEdgeID {
	var out []core.HalfEdgeID
	n := int(p.Order())
	for v := 0; v < n; v++ {
		if p.Degree(core.VertexID(v)) < k-1 {
			continue
		}
		first := p.FirstEdge(core.VertexID(v))
		if first == core.NilHalfEdge {
			continue
		}
		for h := first; ; {
			out = append(out, h)
			h = p.Next(h)
			if h == first {
				break
			}
		}
	}
	return out
}

// FindExtensionsE3 enumerates one canonical representative site per
// automorphism orbit for the E3 operator (insert a degree-3 vertex into an
// existing triangular face).
func FindExtensionsE3(p *core.Pool) ([]core.HalfEdgeID, error) {
	return dedupeByOrbit(p, uniformColour(p), fanCandidates(p, 3))
}

// FindExtensionsE4 is FindExtensionsE3 for the degree-4 insertion operator.
func FindExtensionsE4(p *core.Pool) ([]core.HalfEdgeID, error) {
	return dedupeByOrbit(p, uniformColour(p), fanCandidates(p, 4))
}

// FindExtensionsE5 is FindExtensionsE3 for the degree-5 insertion operator.
func FindExtensionsE5(p *core.Pool) ([]core.HalfEdgeID, error) {
	return dedupeByOrbit(p, uniformColour(p), fanCandidates(p, 5))
}

// ExpandE3 inserts a degree-3 vertex at site (a half-edge returned by
// FindExtensionsE3), returning the new vertex.
func ExpandE3(p *core.Pool, site core.HalfEdgeID) (core.VertexID, error) {
	z, _, err := ExpandFan(p, site, 3)
	return z, err
}

// ExpandE4 is ExpandE3 for the degree-4 insertion operator.
func ExpandE4(p *core.Pool, site core.HalfEdgeID) (core.VertexID, error) {
	z, _, err := ExpandFan(p, site, 4)
	return z, err
}

// ExpandE5 is ExpandE3 for the degree-5 insertion operator.
func ExpandE5(p *core.Pool, site core.HalfEdgeID) (core.VertexID, error) {
	z, _, err := ExpandFan(p, site, 5)
	return z, err
}

// ReduceE3 undoes an ExpandE3 (or ExpandE4/ExpandE5 - ReduceFan reads the
// degree of z itself, so one Reduce serves the whole family) at z.
func ReduceE3(p *core.Pool, z core.VertexID) error { return ReduceFan(p, z) }

// LegalE3 reports which already-reduced sites are valid canonical-
// construction-path parents for the child just produced, by delegating to
// canon.CanonEdge with the freshly found candidate set.
func LegalE3(p *core.Pool, ref core.HalfEdgeID) (bool, error) {
	cand, err := FindExtensionsE3(p)
	if err != nil {
		return false, opsErrorf("LegalE3", "enumerating candidates", err)
	}
	return canonEdgeOf(p, ref, cand)
}

// ApollonianExpand restricts ExpandE3 to sites whose enclosing face has
// all three corners of degree >= 3 already present since the network's
// first K4 (Apollonian networks are exactly the E3-only triangulations,
// spec.md §4.3 "Apollonian networks"); structurally this is the same site
// set as FindExtensionsE3, so Apollonian reuses E3's operators directly and
// differs only in never calling ExpandE4/ExpandE5 from the scanner.
func ApollonianExpand(p *core.Pool, site core.HalfEdgeID) (core.VertexID, error) {
	return ExpandE3(p, site)
}
