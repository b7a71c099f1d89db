package scanner_test

import (
	"testing"

	"github.com/katalvlaran/planargen/canon"
	"github.com/katalvlaran/planargen/core"
	"github.com/katalvlaran/planargen/ops"
	"github.com/katalvlaran/planargen/scanner"
	"github.com/katalvlaran/planargen/seed"
)

func TestScanner_TriangulationAtSeedOrderEmitsOnce(t *testing.T) {
	t.Parallel()

	p, err := seed.Seed(seed.Triangulation, 4)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	var got []*core.Pool
	sink := func(g *core.Pool, aut canon.Automorphisms) error {
		got = append(got, g)
		return nil
	}

	sc, err := scanner.New(ops.Triangulation, 4, nil, sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sc.Run(p); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 emitted graph (K4 at its own seed order), got %d", len(got))
	}
}

func TestScanner_TriangulationOrderSixCountMatchesKnownScenario(t *testing.T) {
	t.Parallel()

	p, err := seed.Seed(seed.Triangulation, 6)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	count := 0
	sink := func(g *core.Pool, aut canon.Automorphisms) error {
		count++
		return nil
	}

	sc, err := scanner.New(ops.Triangulation, 6, nil, sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sc.Run(p); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// spec scenario table: 6-vertex triangulations number 2.
	if count != 2 {
		t.Fatalf("expected 2 six-vertex triangulations, got %d", count)
	}
}

func TestScanner_UnsupportedClassErrors(t *testing.T) {
	t.Parallel()

	if _, err := scanner.New(ops.Class(99), 4, nil, nil); err == nil {
		t.Fatal("expected an error for an unknown class")
	}
}

func TestSplitter_DisabledWhenModIsOne(t *testing.T) {
	t.Parallel()

	sp, err := scanner.NewSplitter(5, 0, 1)
	if err != nil {
		t.Fatalf("NewSplitter: %v", err)
	}
	for order := 0; order < 10; order++ {
		if !sp.ShouldDescend(order, order+1) {
			t.Fatalf("mod=1 must never reject a subtree (order %d)", order)
		}
	}
}

func TestSplitter_RejectsBadResidue(t *testing.T) {
	t.Parallel()

	if _, err := scanner.NewSplitter(5, 3, 2); err == nil {
		t.Fatal("expected an error for res >= mod")
	}
}

func TestSplitter_PartitionsDisjointly(t *testing.T) {
	t.Parallel()

	const mod = 3
	const level = 5
	hits := make(map[int]int)
	for res := 0; res < mod; res++ {
		sp, err := scanner.NewSplitter(level, res, mod)
		if err != nil {
			t.Fatalf("NewSplitter(res=%d): %v", res, err)
		}
		for crossing := 0; crossing < 6; crossing++ {
			if sp.ShouldDescend(level-1, level) {
				hits[crossing]++
			}
		}
	}
	for crossing, n := range hits {
		if n != 1 {
			t.Errorf("crossing %d entered by %d residues, want exactly 1", crossing, n)
		}
	}
}
