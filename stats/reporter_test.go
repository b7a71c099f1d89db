package stats_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/planargen/canon"
	"github.com/katalvlaran/planargen/core"
	"github.com/katalvlaran/planargen/stats"
)

// tetrahedronRotation is K4's rotation system: every vertex adjacent to
// every other, clockwise order arbitrary but consistent.
func tetrahedronRotation() [][]core.VertexID {
	return [][]core.VertexID{
		{1, 2, 3},
		{0, 3, 2},
		{0, 1, 3},
		{0, 2, 1},
	}
}

func TestReporter_RecordAndWriteTo(t *testing.T) {
	t.Parallel()

	p := core.Bootstrap(4, tetrahedronRotation())
	colour := make([]int32, p.Order())
	res, err := canon.Canon(p, colour)
	if err != nil {
		t.Fatalf("Canon: %v", err)
	}
	aut := canon.FromResult(p, colour, res)

	r := stats.NewReporter(true)
	if err := r.Record(p, aut); err != nil {
		t.Fatalf("Record: %v", err)
	}

	var buf strings.Builder
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"graphs emitted: 1",
		"degree histogram:",
		"  3: 4",
		"face-size histogram:",
		"automorphism group size:",
		"diameter:",
		"  1: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteTo output missing %q, got:\n%s", want, out)
		}
	}
}

func TestReporter_DegreeMomentsForRegularGraph(t *testing.T) {
	t.Parallel()

	p := core.Bootstrap(4, tetrahedronRotation())
	colour := make([]int32, p.Order())
	res, err := canon.Canon(p, colour)
	if err != nil {
		t.Fatalf("Canon: %v", err)
	}
	aut := canon.FromResult(p, colour, res)

	r := stats.NewReporter(false)
	if err := r.Record(p, aut); err != nil {
		t.Fatalf("Record: %v", err)
	}

	var buf strings.Builder
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	// K4 is 3-regular: mean degree 3, zero variance.
	if want := "degree mean: 3.0000  variance: 0.0000"; !strings.Contains(buf.String(), want) {
		t.Errorf("WriteTo output missing %q, got:\n%s", want, buf.String())
	}
}

func TestReporter_NoDiameterWhenDisabled(t *testing.T) {
	t.Parallel()

	p := core.Bootstrap(4, tetrahedronRotation())
	colour := make([]int32, p.Order())
	res, err := canon.Canon(p, colour)
	if err != nil {
		t.Fatalf("Canon: %v", err)
	}
	aut := canon.FromResult(p, colour, res)

	r := stats.NewReporter(false)
	if err := r.Record(p, aut); err != nil {
		t.Fatalf("Record: %v", err)
	}

	var buf strings.Builder
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if strings.Contains(buf.String(), "diameter:") {
		t.Errorf("WriteTo emitted diameter section while disabled:\n%s", buf.String())
	}
}
