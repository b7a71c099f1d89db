// File: graph6.go
// Role: the graph6 encoder (spec.md §6: "as specified by the ecosystem
// format; encodes the underlying graph only"). Lowers p to its unembedded
// simplegraph.Graph-equivalent edge set and writes the standard graph6
// byte layout: N(n), then the upper-triangle adjacency bits packed
// column-major into +63-biased 6-bit bytes.

package emit

import (
	"io"

	"github.com/katalvlaran/planargen/core"
)

// Graph6 implements Encoder for the graph6 format. graph6 carries no
// per-stream header distinct from each graph's own N(n) prefix.
type Graph6 struct{}

func (Graph6) Header() string { return "" }

func (Graph6) Encode(w io.Writer, p *core.Pool) error {
	n := int(p.Order())

	adj := make([]bool, n*n)
	for _, e := range undirectedEdges(p) {
		adj[e[0]*n+e[1]] = true
		adj[e[1]*n+e[0]] = true
	}

	bw := &bitWriter{}
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			bit := byte(0)
			if adj[i*n+j] {
				bit = 1
			}
			bw.writeBit(bit)
		}
	}
	// graph6 pads the adjacency bits with 0s (bytes() would pad with 1s).
	for len(bw.bits)%6 != 0 {
		bw.writeBit(0)
	}

	out, err := encodeN(nil, n)
	if err != nil {
		return emitErrorf("Graph6.Encode", "order %d", err, n)
	}
	out = append(out, bw.bytes()...)
	out = append(out, '\n')

	if _, err := w.Write(out); err != nil {
		return emitErrorf("Graph6.Encode", "writing graph of order %d", err, n)
	}
	return nil
}
