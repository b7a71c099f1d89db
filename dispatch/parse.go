// File: parse.go
// Role: Parse, the flag.FlagSet wiring turning argv into an Options.
//
// No CLI-argument library anywhere in the retrieval pack (DESIGN.md
// records this); the standard library's flag package is the stdlib-only
// exception for this one component, same justification emit's graph6/
// sparse6 byte-layout encoders get.

package dispatch

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse builds an Options from args (typically os.Args[1:]). It validates
// that every flag parses to the right type and that n was supplied; it
// does not yet decide whether the flags combine into a resolvable class -
// that is Resolve's job.
func Parse(args []string) (*Options, error) {
	fs := flag.NewFlagSet("planargen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opt := &Options{DiskOuter: -1}

	fs.IntVar(&opt.N, "n", 0, "target order")
	fs.IntVar(&opt.Res, "res", 0, "residue class for split generation")
	fs.IntVar(&opt.Mod, "mod", 1, "modulus for split generation")

	fs.IntVar(&opt.Connectivity, "c", 0, "minimum connectivity (1..5)")
	fs.IntVar(&opt.MinDegree, "m", 0, "minimum vertex degree")

	fs.BoolVar(&opt.Polytope, "p", false, "general polytopes")
	fs.BoolVar(&opt.Bipartite, "b", false, "bipartite triangulations")
	fs.BoolVar(&opt.Quad, "q", false, "quadrangulations")
	diskOuter := fs.Int("P", -1, "disk triangulations, outer face size (0 = any)")
	fs.BoolVar(&opt.Apollonian, "A", false, "Apollonian networks")

	fs.StringVar(&opt.EdgeRangeRaw, "e", "", "edge-count range a[:b]")
	fs.IntVar(&opt.MaxFace, "f", 0, "maximum face size")

	fs.BoolVar(&opt.LoopVariant, "t", false, "special-loop handling in connectivity < 3")

	fs.BoolVar(&opt.Dual, "d", false, "emit planar dual")
	fs.BoolVar(&opt.Oriented, "o", false, "emit each chiral graph twice")
	fs.BoolVar(&opt.GraphFlavor, "G", false, "emission flavour modifier")
	fs.BoolVar(&opt.VertexCount, "V", false, "emission flavour modifier")

	fs.BoolVar(&opt.Suppress, "u", false, "generate but do not emit")

	fs.BoolVar(&opt.ASCII, "a", false, "ASCII output encoding")
	fs.BoolVar(&opt.Graph6, "g", false, "graph6 output encoding")
	fs.BoolVar(&opt.Sparse6, "s", false, "sparse6 output encoding")
	fs.BoolVar(&opt.EdgeCode, "E", false, "edge_code output encoding")

	fs.BoolVar(&opt.Header, "h", false, "write format header")
	fs.BoolVar(&opt.Verbose, "v", false, "verbose statistics to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, dispatchErrorf("Parse", "parsing arguments", err)
	}
	opt.DiskOuter = *diskOuter
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "c" {
			opt.ConnectivitySet = true
		}
	})

	rest := fs.Args()
	if opt.N == 0 && len(rest) > 0 {
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return nil, dispatchErrorf("Parse", "positional order argument %q", err, rest[0])
		}
		opt.N = n
	}
	if opt.N <= 0 {
		return nil, dispatchErrorf("Parse", "n=%d", ErrMissingOrder, opt.N)
	}

	return opt, nil
}

// parseEdgeRange parses -e's a[:b] syntax into an EdgeRange.
func parseEdgeRange(raw string) (EdgeRange, error) {
	if raw == "" {
		return EdgeRange{}, nil
	}
	parts := strings.SplitN(raw, ":", 2)
	lo, err := strconv.Atoi(parts[0])
	if err != nil || lo < 0 {
		return EdgeRange{}, dispatchErrorf("parseEdgeRange", "lower bound %q", ErrBadEdgeRange, parts[0])
	}
	if len(parts) == 1 {
		return EdgeRange{Min: lo}, nil
	}
	hi, err := strconv.Atoi(parts[1])
	if err != nil || hi < lo {
		return EdgeRange{}, dispatchErrorf("parseEdgeRange", "upper bound %q", ErrBadEdgeRange, parts[1])
	}
	return EdgeRange{Min: lo, Max: hi}, nil
}

// Usage renders the flag table to w, used by cmd/planargen on a parse
// error.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "usage: planargen [flags] n")
	fmt.Fprintln(w, "  -res, -mod      residue class for split generation")
	fmt.Fprintln(w, "  -c k            minimum connectivity (1..5)")
	fmt.Fprintln(w, "  -m k            minimum vertex degree")
	fmt.Fprintln(w, "  -p              general polytopes")
	fmt.Fprintln(w, "  -b              bipartite triangulations")
	fmt.Fprintln(w, "  -q              quadrangulations")
	fmt.Fprintln(w, "  -P k            disk triangulations, outer face size k (0 = any)")
	fmt.Fprintln(w, "  -e a[:b]        edge-count range (polytope phase)")
	fmt.Fprintln(w, "  -f k            maximum face size (polytope phase)")
	fmt.Fprintln(w, "  -A              Apollonian networks (E3 only)")
	fmt.Fprintln(w, "  -t              special-loop handling in connectivity < 3")
	fmt.Fprintln(w, "  -d              emit planar dual")
	fmt.Fprintln(w, "  -o              emit each chiral graph twice")
	fmt.Fprintln(w, "  -G, -V          emission flavour modifiers")
	fmt.Fprintln(w, "  -u              generate but do not emit")
	fmt.Fprintln(w, "  -a, -g, -s, -E  output encoding (ASCII, graph6, sparse6, edge_code)")
	fmt.Fprintln(w, "  -h              write format header")
	fmt.Fprintln(w, "  -v              verbose statistics to stderr")
}
