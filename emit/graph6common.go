// File: graph6common.go
// Role: shared plumbing between the graph6 and sparse6 encoders (both
// ecosystem formats, spec.md §6): the N(n) vertex-count prefix and a
// small bit-writer that packs 6-bit groups into +63-biased bytes.

package emit

import "github.com/katalvlaran/planargen/core"

// maxGraph6Order is the largest order this package's N(n) encoder
// supports (three 6-bit groups after the 0x7E marker, a form the graph6
// format allows up to n = 258047).
// No class in this module's search tree reaches that order in practice;
// larger graphs report ErrTooLarge rather than emit the rarely-used
// double-marker extension.
const maxGraph6Order = 258047

// encodeN appends the graph6/sparse6 vertex-count prefix N(n) to dst.
func encodeN(dst []byte, n int) ([]byte, error) {
	if n < 0 || n > maxGraph6Order {
		return dst, emitErrorf("encodeN", "order %d", ErrTooLarge, n)
	}
	if n <= 62 {
		return append(dst, byte(n+63)), nil
	}
	dst = append(dst, 126)
	dst = append(dst, byte((n>>12)&0x3F)+63)
	dst = append(dst, byte((n>>6)&0x3F)+63)
	dst = append(dst, byte(n&0x3F)+63)
	return dst, nil
}

// bitWriter accumulates individual bits MSB-first and packs them into
// +63-biased 6-bit bytes on demand.
type bitWriter struct {
	bits []byte // one bool per bit, 0 or 1
}

func (b *bitWriter) writeBit(bit byte) {
	b.bits = append(b.bits, bit&1)
}

// writeBits appends the low width bits of v, most-significant bit first.
func (b *bitWriter) writeBits(v int, width int) {
	for i := width - 1; i >= 0; i-- {
		b.writeBit(byte((v >> uint(i)) & 1))
	}
}

// bytes pads the accumulated bits with 1s to a multiple of 6 (sparse6's
// padding rule; Graph6.Encode pads with 0s itself before calling bytes)
// and packs them into biased bytes.
func (b *bitWriter) bytes() []byte {
	bits := append([]byte(nil), b.bits...)
	for len(bits)%6 != 0 {
		bits = append(bits, 1)
	}
	out := make([]byte, 0, len(bits)/6)
	for i := 0; i < len(bits); i += 6 {
		var v byte
		for j := 0; j < 6; j++ {
			v = v<<1 | bits[i+j]
		}
		out = append(out, v+63)
	}
	return out
}

// bitsForOrder returns the number of bits needed to name any vertex in a
// graph of order n (k in sparse6's "k = ceil(log2(n))", with k=1 for n<=1
// to keep writeBits well-defined).
func bitsForOrder(n int) int {
	k := 0
	for (1 << uint(k)) < n {
		k++
	}
	if k == 0 {
		k = 1
	}
	return k
}

// undirectedEdges returns every undirected edge of p as (lo,hi) vertex
// pairs with lo <= hi, in increasing order of first visit during a
// vertex-major rotation scan (sufficient ordering for both graph6's
// column-major bit layout, built separately, and sparse6's incremental
// edge stream, which sorts them again by hi).
func undirectedEdges(p *core.Pool) [][2]int {
	n := int(p.Order())
	var edges [][2]int
	for v := 0; v < n; v++ {
		first := p.FirstEdge(core.VertexID(v))
		if first == core.NilHalfEdge {
			continue
		}
		for h := first; ; {
			if p.Min(h) == h {
				u, w := v, int(p.End(h))
				if u > w {
					u, w = w, u
				}
				edges = append(edges, [2]int{u, w})
			}
			h = p.Next(h)
			if h == first {
				break
			}
		}
	}
	return edges
}
