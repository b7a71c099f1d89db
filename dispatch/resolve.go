// File: resolve.go
// Role: Resolve, the Dispatcher of spec.md §2: turns a validated Options
// into a Plan naming exactly which seed, operator family, split residue,
// and emission wiring cmd/planargen should run.

package dispatch

import (
	"github.com/katalvlaran/planargen/emit"
	"github.com/katalvlaran/planargen/ops"
	"github.com/katalvlaran/planargen/scanner"
	"github.com/katalvlaran/planargen/seed"
)

// Plan is everything cmd/planargen needs to build and run one generation:
// which class, at which order, split how, emitted how.
type Plan struct {
	Class  ops.Class
	Target int

	// General distinguishes, within the edge-deletion reverse scan, the
	// unrestricted variant (Class == ops.General) from the 3-connected
	// polytope variant (Class == ops.Polytope); RunPolytope needs this as
	// a plain bool rather than re-switching on Class itself.
	General   bool
	EdgeRange scanner.EdgeRange
	MaxFace   int

	// DiskOuterSize filters emission to graphs whose outer face has
	// exactly this many sides; 0 means no filter (-P 0, "any").
	DiskOuterSize int

	Res, Mod int

	Encoder     emit.Encoder
	Header      bool
	Dual        bool
	Oriented    bool
	GraphFlavor bool
	VertexCount bool
	Suppress    bool
	Verbose     bool
}

// Resolve interprets opt and builds the Plan it names, or reports why the
// combination cannot be resolved (spec.md §7 "user input errors").
func Resolve(opt *Options) (*Plan, error) {
	class, general, err := resolveClass(opt)
	if err != nil {
		return nil, err
	}

	if opt.ConnectivitySet && (opt.Connectivity < 1 || opt.Connectivity > 5) {
		return nil, dispatchErrorf("Resolve", "c=%d", ErrBadConnectivity, opt.Connectivity)
	}
	if opt.Mod < 1 {
		return nil, dispatchErrorf("Resolve", "mod=%d", ErrBadSplit, opt.Mod)
	}
	if opt.Mod > 1 && (opt.Res < 0 || opt.Res >= opt.Mod) {
		return nil, dispatchErrorf("Resolve", "res=%d, mod=%d", ErrBadSplit, opt.Res, opt.Mod)
	}

	if err := validateOrder(class, opt.N); err != nil {
		return nil, err
	}

	edgeRange, err := parseEdgeRange(opt.EdgeRangeRaw)
	if err != nil {
		return nil, err
	}

	enc, err := resolveEncoder(opt)
	if err != nil {
		return nil, err
	}

	diskOuterSize := 0
	if class == ops.Disk && opt.DiskOuter > 0 {
		diskOuterSize = opt.DiskOuter
	}

	return &Plan{
		Class:         class,
		Target:        opt.N,
		General:       general,
		EdgeRange:     scanner.EdgeRange{Min: edgeRange.Min, Max: edgeRange.Max},
		MaxFace:       opt.MaxFace,
		DiskOuterSize: diskOuterSize,
		Res:           opt.Res,
		Mod:           opt.Mod,
		Encoder:       enc,
		Header:        opt.Header,
		Dual:          opt.Dual,
		Oriented:      opt.Oriented,
		GraphFlavor:   opt.GraphFlavor,
		VertexCount:   opt.VertexCount,
		Suppress:      opt.Suppress,
		Verbose:       opt.Verbose,
	}, nil
}

// resolveClass picks the one class opt's (mutually exclusive) class flags
// and -m name. general reports whether the edge-deletion phase (Polytope
// or General) should run with no connectivity floor.
func resolveClass(opt *Options) (class ops.Class, general bool, err error) {
	flags := 0
	if opt.Polytope {
		flags++
	}
	if opt.Bipartite {
		flags++
	}
	if opt.Quad {
		flags++
	}
	if opt.DiskOuter >= 0 {
		flags++
	}
	if opt.Apollonian {
		flags++
	}
	if flags > 1 {
		return 0, false, dispatchErrorf("resolveClass", "more than one class flag set", ErrConflictingClass)
	}

	if opt.MinDegree != 0 && opt.MinDegree != 4 && opt.MinDegree != 5 {
		return 0, false, dispatchErrorf("resolveClass", "m=%d", ErrBadMinDegree, opt.MinDegree)
	}
	if opt.MinDegree != 0 && flags > 0 {
		return 0, false, dispatchErrorf("resolveClass", "-m combined with a class flag", ErrUnsupportedCombination)
	}

	switch {
	case opt.Apollonian:
		return ops.Apollonian, false, nil
	case opt.DiskOuter >= 0:
		return ops.Disk, false, nil
	case opt.Bipartite:
		return ops.EulerianTriangulation, false, nil
	case opt.Quad:
		if opt.ConnectivitySet && opt.Connectivity >= 3 {
			return ops.Quadrangulation3Connected, false, nil
		}
		return ops.QuadrangulationGeneral, false, nil
	case opt.Polytope:
		if opt.ConnectivitySet && opt.Connectivity < 3 {
			return ops.General, true, nil
		}
		return ops.Polytope, false, nil
	case opt.MinDegree == 4:
		return ops.MinDeg4Triangulation, false, nil
	case opt.MinDegree == 5:
		return ops.MinDeg5Triangulation, false, nil
	default:
		return ops.Triangulation, false, nil
	}
}

// validateOrder confirms n is reachable for class: either at/above the
// class's seed order (the ordinary recursion handles it) or covered by a
// SpecialCase.
func validateOrder(class ops.Class, n int) error {
	if n <= 0 {
		return dispatchErrorf("validateOrder", "n=%d", ErrBadOrder, n)
	}
	base, ok := seed.SeedOrder(class)
	if !ok {
		return dispatchErrorf("validateOrder", "class %v has no seed", ErrBadOrder, class)
	}
	if n >= base {
		return nil
	}
	_, found, err := seed.SpecialCase(class, n, n)
	if err != nil {
		return dispatchErrorf("validateOrder", "checking special case for n=%d", err, n)
	}
	if !found {
		return dispatchErrorf("validateOrder", "n=%d is below class %v's seed order %d with no special case", ErrBadOrder, n, class, base)
	}
	return nil
}

// resolveEncoder picks the Encoder the -a/-g/-s/-E flags name, defaulting
// to planar_code when none is set.
func resolveEncoder(opt *Options) (emit.Encoder, error) {
	flags := 0
	if opt.ASCII {
		flags++
	}
	if opt.Graph6 {
		flags++
	}
	if opt.Sparse6 {
		flags++
	}
	if opt.EdgeCode {
		flags++
	}
	if flags > 1 {
		return nil, dispatchErrorf("resolveEncoder", "more than one encoding flag set", ErrConflictingEncoding)
	}

	switch {
	case opt.ASCII:
		return emit.ASCII{}, nil
	case opt.Graph6:
		return emit.Graph6{}, nil
	case opt.Sparse6:
		return emit.Sparse6{}, nil
	case opt.EdgeCode:
		return emit.EdgeCode{}, nil
	default:
		return emit.PlanarCode{}, nil
	}
}
