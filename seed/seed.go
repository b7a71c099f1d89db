// File: seed.go
// Role: Seed/SpecialCase - the fixed starting point of every class's
// recursion (spec.md §4.8).

package seed

import "github.com/katalvlaran/planargen/core"

// seedOrder is the vertex count of each class's base graph.
var seedOrder = map[Class]int{
	Triangulation:             4,
	Apollonian:                4,
	MinDeg4Triangulation:      6,
	EulerianTriangulation:     6,
	Bipartite:                 6,
	MinDeg5Triangulation:      12,
	Quadrangulation3Connected: 8,
	QuadrangulationGeneral:    4,
	Disk:                      4,
	Polytope:                  4,
	General:                   4,
}

// SeedOrder reports the base-graph order for class, i.e. the smallest
// target order Seed itself can satisfy; orders below it fall to
// SpecialCase instead.
func SeedOrder(class Class) (int, bool) {
	n, ok := seedOrder[class]
	return n, ok
}

// Seed returns the fixed base embedding for class, bootstrapped into a
// pool sized for recursion up to maxOrder vertices.
//
// Complexity: O(maxOrder) for the pool allocation, O(1) for the base
// embedding itself (all base graphs have at most 12 vertices).
func Seed(class Class, maxOrder int) (*core.Pool, error) {
	switch class {
	case Triangulation, Apollonian:
		return core.Bootstrap(maxOrder, k4Rotation()), nil
	case MinDeg4Triangulation, EulerianTriangulation, Bipartite:
		return core.Bootstrap(maxOrder, octahedronRotation()), nil
	case MinDeg5Triangulation:
		return core.Bootstrap(maxOrder, icosahedronRotation()), nil
	case Quadrangulation3Connected:
		return core.Bootstrap(maxOrder, cubeRotation()), nil
	case QuadrangulationGeneral:
		return core.Bootstrap(maxOrder, fourCycleRotation()), nil
	case Disk:
		p := core.Bootstrap(maxOrder, k4Rotation())
		p.SetBoundary(core.HalfEdgeID(0)) // any one of K4's four triangular faces serves as the outer face
		return p, nil
	case Polytope, General:
		return core.Bootstrap(maxOrder, k4Rotation()), nil
	default:
		return nil, seedErrorf("Seed", "class %v", ErrUnknownClass, class)
	}
}

// SpecialCase returns the fixed embedding for a target order n below
// class's seed order, if one exists. These small orders are emitted
// directly rather than reached by Expand recursion (spec.md §4.8
// "special cases"); the second return is false when n is at or above the
// seed order (the caller should recurse normally) or when no simple graph
// of order n exists for the class at all.
func SpecialCase(class Class, n, maxOrder int) (*core.Pool, bool, error) {
	base, ok := seedOrder[class]
	if !ok {
		return nil, false, seedErrorf("SpecialCase", "class %v", ErrUnknownClass, class)
	}
	if n >= base {
		return nil, false, nil
	}

	if class == Disk && n == 3 {
		p := core.Bootstrap(maxOrder, [][]core.VertexID{{1, 2}, {2, 0}, {0, 1}})
		p.SetBoundary(core.HalfEdgeID(0))
		return p, true, nil
	}
	return nil, false, nil
}
