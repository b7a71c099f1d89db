package core_test

import (
	"testing"

	"github.com/katalvlaran/planargen/core"
	"github.com/stretchr/testify/require"
)

// k4Rotation returns a consistent clockwise rotation system for K4: every
// vertex adjacent to every other, a planar embedding with 4 triangular
// faces (the tetrahedron boundary).
func k4Rotation() [][]core.VertexID {
	return [][]core.VertexID{
		{1, 2, 3},
		{0, 3, 2},
		{0, 1, 3},
		{0, 2, 1},
	}
}

func TestBootstrap_K4_Invariants(t *testing.T) {
	p := core.Bootstrap(8, k4Rotation())

	require.Equal(t, core.VertexID(4), p.Order())
	require.Equal(t, 6, p.Size())
	require.NoError(t, p.Verify())

	faces := p.Faces()
	require.Len(t, faces, 4)
	for _, f := range faces {
		require.Equal(t, 3, f.Size)
	}
	require.Equal(t, 2, p.EulerCharacteristic())
}

func TestSpliceInOut_RoundTrip(t *testing.T) {
	p := core.Bootstrap(8, k4Rotation())
	require.NoError(t, p.Verify())

	v, err := p.AllocVertex()
	require.NoError(t, err)

	anchor := p.FirstEdge(0)
	e, inv, err := p.AllocPair(0, v)
	require.NoError(t, err)

	p.SpliceIn(anchor, e) // insert e into 0's existing rotation
	p.SpliceFirst(inv)    // v was isolated: inv becomes v's sole half-edge

	require.Equal(t, 4, p.Degree(0))
	require.Equal(t, 1, p.Degree(v))

	p.SpliceOut(e)
	p.SetFirstEdge(0, anchor)
	p.SpliceOut(inv)
	require.NoError(t, p.FreeEdgePair(e))
	require.NoError(t, p.FreeVertex(v))

	require.Equal(t, core.VertexID(4), p.Order())
	require.Equal(t, 6, p.Size())
	require.NoError(t, p.Verify())
}
