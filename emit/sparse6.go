// File: sparse6.go
// Role: the sparse6 encoder (spec.md §6: same "ecosystem format, loses
// the embedding" family as graph6, but an edge-list encoding sparse6
// favours for graphs with few edges relative to n^2 - every planar graph
// this package generates).
//
// Layout: ':' marker, N(n), then an incremental edge stream: maintaining
// a "current vertex" curv starting at 0, each edge (v,w), v<=w, processed
// in nondecreasing order of w (ties broken by v) emits either a single
// bit 0 plus k bits of v (w == curv), a single bit 1 plus k bits of v
// (w == curv+1, advancing curv), or a bit 1, k bits of w, a bit 0, and k
// bits of v (otherwise, advancing curv to w) - the standard sparse6
// incremental b-code, k = bitsForOrder(n). The final bit stream is
// padded with 1s to a 6-bit boundary and packed into +63-biased bytes.

package emit

import (
	"io"
	"sort"

	"github.com/katalvlaran/planargen/core"
)

// Sparse6 implements Encoder for the sparse6 format.
type Sparse6 struct{}

func (Sparse6) Header() string { return "" }

func (Sparse6) Encode(w io.Writer, p *core.Pool) error {
	n := int(p.Order())
	k := bitsForOrder(n)

	edges := undirectedEdges(p)
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][1] != edges[j][1] {
			return edges[i][1] < edges[j][1]
		}
		return edges[i][0] < edges[j][0]
	})

	bw := &bitWriter{}
	curv := 0
	for _, e := range edges {
		v, we := e[0], e[1]
		switch {
		case we == curv:
			bw.writeBit(0)
			bw.writeBits(v, k)
		case we == curv+1:
			curv = we
			bw.writeBit(1)
			bw.writeBits(v, k)
		default:
			curv = we
			bw.writeBit(1)
			bw.writeBits(we, k)
			bw.writeBit(0)
			bw.writeBits(v, k)
		}
	}

	out := []byte{':'}
	out, err := encodeN(out, n)
	if err != nil {
		return emitErrorf("Sparse6.Encode", "order %d", err, n)
	}
	out = append(out, bw.bytes()...)
	out = append(out, '\n')

	if _, err := w.Write(out); err != nil {
		return emitErrorf("Sparse6.Encode", "writing graph of order %d", err, n)
	}
	return nil
}
