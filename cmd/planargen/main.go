// Command planargen enumerates planar graphs of a fixed class and vertex
// order, each isomorphism class exactly once, per spec.md §6's CLI
// surface. It is a thin composition root: parse flags, resolve them to a
// generation plan, run the scan, emit.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/planargen/canon"
	"github.com/katalvlaran/planargen/core"
	"github.com/katalvlaran/planargen/dispatch"
	"github.com/katalvlaran/planargen/emit"
	"github.com/katalvlaran/planargen/ops"
	"github.com/katalvlaran/planargen/scanner"
	"github.com/katalvlaran/planargen/seed"
	"github.com/katalvlaran/planargen/stats"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run implements spec.md §7's propagation policy: every error, whatever
// its source, is surfaced here as a one-line diagnostic and exit code 1.
func run(args []string, stdout, stderr io.Writer) int {
	opt, err := dispatch.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		dispatch.Usage(stderr)
		return 1
	}

	plan, err := dispatch.Resolve(opt)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	p, err := buildSeed(plan)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var reporter *stats.Reporter
	if plan.Verbose {
		reporter = stats.NewReporter(true)
	}

	var emitter *emit.Emitter
	if !plan.Suppress {
		emitter = emit.NewEmitter(plan.Encoder, stdout, plan.Header, plan.Dual, plan.Oriented, plan.GraphFlavor, plan.VertexCount)
	}

	sink := func(g *core.Pool, aut canon.Automorphisms) error {
		if plan.Class == ops.Disk && plan.DiskOuterSize > 0 && g.FaceSize(g.Boundary()) != plan.DiskOuterSize {
			return nil
		}
		if reporter != nil {
			if err := reporter.Record(g, aut); err != nil {
				return err
			}
		}
		if emitter != nil {
			return emitter.Emit(g, aut)
		}
		return nil
	}

	splitter, err := scanner.NewSplitter(splitLevel(plan.Class, plan.Target), plan.Res, plan.Mod)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var runErr error
	switch plan.Class {
	case ops.Polytope, ops.General:
		runErr = scanner.RunPolytope(p, plan.Target, plan.General, plan.EdgeRange, plan.MaxFace, splitter, sink)
	default:
		var sc *scanner.Scanner
		sc, runErr = scanner.New(plan.Class, plan.Target, splitter, sink)
		if runErr == nil {
			runErr = sc.Run(p)
		}
	}
	if runErr != nil {
		fmt.Fprintln(stderr, runErr)
		return 1
	}

	if reporter != nil {
		if _, err := reporter.WriteTo(stderr); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	return 0
}

// buildSeed constructs plan's starting pool: the class's fixed seed graph
// when the target order is at or above it, or a SpecialCase graph below
// it (dispatch.Resolve has already confirmed one of the two applies).
func buildSeed(plan *dispatch.Plan) (*core.Pool, error) {
	base, ok := seed.SeedOrder(plan.Class)
	if !ok {
		return nil, fmt.Errorf("buildSeed: class %v has no registered seed order", plan.Class)
	}
	if plan.Target >= base {
		return seed.Seed(plan.Class, plan.Target)
	}
	p, found, err := seed.SpecialCase(plan.Class, plan.Target, plan.Target)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("buildSeed: no special case for class %v at n=%d", plan.Class, plan.Target)
	}
	return p, nil
}

// splitLevel picks the res/mod crossing order (spec.md §4.6): one below
// the target, never below the class's own seed order.
func splitLevel(class ops.Class, target int) int {
	level := target - 1
	if base, ok := seed.SeedOrder(class); ok && level < base {
		level = base
	}
	if level < 0 {
		level = 0
	}
	return level
}
