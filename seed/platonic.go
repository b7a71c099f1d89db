// File: platonic.go
// Role: the five fixed base embeddings Seed hands to core.Bootstrap, one
// per recursion family (spec.md §4.8).
//
// Canonical model:
//   - Each base graph is given as an explicit clockwise rotation list per
//     vertex (core.Bootstrap's input shape), not as an unembedded edge set:
//     an embedding on the sphere is extra information a plain edge list
//     does not carry, and every recursion in ops/ needs that embedding from
//     the very first step.
//   - Vertex IDs are 0..n-1, labelled as each function's comment
//     describes.
//
// Determinism:
//   - Every rotation list below is a fixed literal (or, for the
//     icosahedron, a closed-form function of the vertex index); Seed never
//     consults a random source.

package seed

import "github.com/katalvlaran/planargen/core"

// k4Rotation is the complete graph on 4 vertices, embedded with its 4
// triangular faces (spec.md §4.8 "ordinary triangulations").
func k4Rotation() [][]core.VertexID {
	return [][]core.VertexID{
		{1, 2, 3},
		{0, 3, 2},
		{0, 1, 3},
		{0, 2, 1},
	}
}

// octahedronRotation is the regular octahedron, embedded with its 8
// triangular faces (spec.md §4.8 "mindeg-4 and Eulerian/bipartite
// triangulations"). Vertices 0,5 are the poles; 1,2,3,4 the equatorial
// 4-cycle in order.
func octahedronRotation() [][]core.VertexID {
	return [][]core.VertexID{
		{1, 2, 3, 4},
		{0, 4, 5, 2},
		{0, 1, 5, 3},
		{0, 2, 5, 4},
		{0, 3, 5, 1},
		{1, 4, 3, 2},
	}
}

// icosahedronRotation is the regular icosahedron, embedded with its 20
// triangular faces (spec.md §4.8 "mindeg-5 triangulations"). Vertex 0 is
// the north pole, vertex 11 the south pole; 1..5 the upper pentagon in
// ring order, 6..10 the lower pentagon in ring order (lower[i] = i+5).
//
// The rotation at each upper-ring vertex i and each lower-ring vertex
// lower(i) is a fixed 5-term pattern shifted by i's position on its
// pentagon; it is derived by formula here rather than written as 12
// independent literals.
func icosahedronRotation() [][]core.VertexID {
	lower := func(i int) core.VertexID { return core.VertexID(5 + ((i-1)%5+5)%5 + 1) }
	next := func(i int) int { return (i%5 + 1) }
	prev := func(i int) int { return ((i-2+5)%5 + 1) }

	rot := make([][]core.VertexID, 12)
	rot[0] = []core.VertexID{5, 4, 3, 2, 1}
	rot[11] = []core.VertexID{6, 7, 8, 9, 10}

	for i := 1; i <= 5; i++ {
		rot[i] = []core.VertexID{0, core.VertexID(next(i)), lower(i), lower(prev(i)), core.VertexID(prev(i))}
		j := lower(i) // = i+5, the lower-ring vertex under upper vertex i
		rot[j] = []core.VertexID{11, lower(prev(i)), core.VertexID(i), core.VertexID(next(i)), lower(next(i))}
	}
	return rot
}

// cubeRotation is the cube graph, embedded with its 6 square faces
// (spec.md §4.8 "3-connected quadrangulations"). Vertices are labelled
// 0..7 by the 3-bit pattern xyz (bit0=x, bit1=y, bit2=z); the rotation at
// each vertex was derived from the canonical square-face list {0,1,3,2},
// {0,2,6,4}, {0,4,5,1}, {1,5,7,3}, {2,3,7,6}, {4,6,7,5}.
func cubeRotation() [][]core.VertexID {
	return [][]core.VertexID{
		{1, 2, 4},
		{0, 5, 3},
		{0, 3, 6},
		{1, 7, 2},
		{0, 6, 5},
		{4, 7, 1},
		{2, 7, 4},
		{5, 6, 3},
	}
}

// fourCycleRotation is the 4-cycle, embedded with its 2 square faces
// (spec.md §4.8 "general quadrangulations"). This is the n=4 base case of
// the concrete scenario table in spec §8 directly, used here as the seed
// rather than a dedicated multigraph bootstrap: a general quadrangulation
// search that starts one step earlier gains no distinct graphs at n=4.
func fourCycleRotation() [][]core.VertexID {
	return [][]core.VertexID{
		{1, 3},
		{2, 0},
		{3, 1},
		{0, 2},
	}
}
