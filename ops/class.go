package ops

import "github.com/katalvlaran/planargen/seed"

// Class re-exports seed.Class: every package above ops (scanner, dispatch)
// talks about generation families in terms of ops.Class, but the
// enumeration itself lives in seed to avoid an import cycle (seed cannot
// depend on ops, since Seed is ops' recursion base case).
type Class = seed.Class

const (
	Triangulation             = seed.Triangulation
	MinDeg4Triangulation      = seed.MinDeg4Triangulation
	MinDeg5Triangulation      = seed.MinDeg5Triangulation
	EulerianTriangulation     = seed.EulerianTriangulation
	Quadrangulation3Connected = seed.Quadrangulation3Connected
	QuadrangulationGeneral    = seed.QuadrangulationGeneral
	Bipartite                 = seed.Bipartite
	Apollonian                = seed.Apollonian
	Disk                      = seed.Disk
	Polytope                  = seed.Polytope
	General                   = seed.General
)
