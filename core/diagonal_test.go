package core_test

import (
	"testing"

	"github.com/katalvlaran/planargen/core"
	"github.com/stretchr/testify/require"
)

// octahedronRotation is the standard 6-vertex, 12-edge, 8-triangular-face
// embedding: two antipodal triples {0,1,2} and {3,4,5} with 0-3,1-4,2-5
// non-adjacent.
func octahedronRotation() [][]core.VertexID {
	return [][]core.VertexID{
		{1, 2, 4, 5},
		{0, 5, 3, 2},
		{0, 1, 3, 4},
		{1, 5, 4, 2},
		{0, 2, 3, 5},
		{0, 4, 3, 1},
	}
}

func TestSwitchDiagonal_RoundTrip(t *testing.T) {
	p := core.Bootstrap(16, octahedronRotation())
	require.NoError(t, p.Verify())

	faces := p.Faces()
	require.Len(t, faces, 8)

	e := p.FirstEdge(0)
	require.Equal(t, 3, p.FaceSize(e))
	require.Equal(t, 3, p.FaceSize(p.Twin(e)))

	p.SwitchDiagonal(e)
	require.NoError(t, p.Verify())
	require.Equal(t, 8, len(p.Faces()))

	p.SwitchDiagonalBack(e)
	require.NoError(t, p.Verify())

	again := p.Faces()
	require.Len(t, again, 8)
	for _, f := range again {
		require.Equal(t, 3, f.Size)
	}
}
