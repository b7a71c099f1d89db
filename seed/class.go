package seed

// Class names one of the generation families spec.md §2 enumerates. Every
// downstream package (ops, scanner, dispatch) shares this single
// enumeration so a CLI flag maps to exactly one seed/operator/legality
// triple.
type Class int

const (
	// Triangulation is the family of simple 3-connected planar
	// triangulations, recursed from K4 by E3/E4/E5.
	Triangulation Class = iota
	// MinDeg4Triangulation restricts Triangulation to minimum degree 4,
	// recursed from the octahedron by Four/Five/S.
	MinDeg4Triangulation
	// MinDeg5Triangulation restricts Triangulation to minimum degree 5,
	// recursed from the icosahedron by A/B/C.
	MinDeg5Triangulation
	// EulerianTriangulation is the family of properly 3-colourable (face-
	// wise Eulerian) triangulations, recursed from the octahedron.
	EulerianTriangulation
	// Quadrangulation3Connected is 3-connected simple quadrangulations,
	// recursed from the cube by P0/P1/P2/P3.
	Quadrangulation3Connected
	// QuadrangulationGeneral is simple quadrangulations without the
	// 3-connectivity floor, recursed from the 4-cycle.
	QuadrangulationGeneral
	// Bipartite is general simple bipartite planar graphs, recursed from
	// the octahedron by Batagelj's P/Q.
	Bipartite
	// Apollonian is the family of Apollonian networks (E3-only
	// triangulations), recursed from K4.
	Apollonian
	// Disk is disk triangulations (triangulations of a polygon), derived
	// from Triangulation by the final outer-face vertex removal.
	Disk
	// Polytope is 3-connected simple planar graphs of minimum degree 3
	// ("polytopes"), derived from Triangulation by reverse edge-deletion.
	Polytope
	// General is simple planar graphs without a connectivity floor.
	General
)

// String names the class the way CLI help text and log lines do.
func (c Class) String() string {
	switch c {
	case Triangulation:
		return "triangulation"
	case MinDeg4Triangulation:
		return "mindeg4-triangulation"
	case MinDeg5Triangulation:
		return "mindeg5-triangulation"
	case EulerianTriangulation:
		return "eulerian-triangulation"
	case Quadrangulation3Connected:
		return "quadrangulation-3c"
	case QuadrangulationGeneral:
		return "quadrangulation-general"
	case Bipartite:
		return "bipartite"
	case Apollonian:
		return "apollonian"
	case Disk:
		return "disk"
	case Polytope:
		return "polytope"
	case General:
		return "general"
	default:
		return "unknown"
	}
}
