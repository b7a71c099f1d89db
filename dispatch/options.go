// File: options.go
// Role: Options, the raw (unvalidated) reflection of spec.md §6's flag
// table; Parse fills one in, Resolve interprets it.

package dispatch

// Options mirrors the CLI flag table verbatim: one field per flag, no
// derived state. Parse only fills this in and checks that the flags
// parse individually; Resolve is what decides what they mean together.
type Options struct {
	N int // n: target order (required)

	Res, Mod int // res/mod: residue class for split generation

	Connectivity    int  // -c k: minimum connectivity (0 = unset)
	ConnectivitySet bool // whether -c was explicitly supplied
	MinDegree       int  // -m k: minimum vertex degree (0 = unset)

	Polytope   bool // -p: general polytopes
	Bipartite  bool // -b: bipartite triangulations
	Quad       bool // -q: quadrangulations
	DiskOuter  int  // -P k: disk triangulations, outer face size k (0 = any); -1 = flag absent
	Apollonian bool // -A: Apollonian networks

	EdgeRangeRaw string // -e a[:b]: edge-count range, raw text (polytope phase)
	MaxFace      int    // -f k: maximum face size (polytope phase), 0 = unset

	LoopVariant bool // -t: special-loop handling in connectivity < 3

	Dual        bool // -d: emit planar dual
	Oriented    bool // -o: emit each chiral graph twice
	GraphFlavor bool // -G: emission flavour modifier
	VertexCount bool // -V: emission flavour modifier

	Suppress bool // -u: generate but do not emit

	ASCII    bool // -a
	Graph6   bool // -g
	Sparse6  bool // -s
	EdgeCode bool // -E

	Header  bool // -h: write format header
	Verbose bool // -v: verbose statistics to stderr
}

// EdgeRange is the parsed form of -e a[:b]. Max == 0 means unbounded.
type EdgeRange struct {
	Min, Max int
}
