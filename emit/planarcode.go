// File: planarcode.go
// Role: the planar_code encoder (spec.md §6 "Output formats").
//
// Layout: stream header ">>planar_code<<", then per graph a one-byte n,
// then for each vertex v = 0..n-1 a sequence of one-byte neighbour ids in
// rotation order terminated by a zero byte. All bytes unsigned; n <= 255.

package emit

import (
	"io"

	"github.com/katalvlaran/planargen/core"
)

const planarCodeHeader = ">>planar_code<<"

// PlanarCode implements Encoder for the planar_code format.
type PlanarCode struct{}

func (PlanarCode) Header() string { return planarCodeHeader }

// Encode writes p's rotation system in planar_code layout. Vertex ids are
// shifted by +1 in the byte stream (0 is reserved as the per-vertex
// terminator), matching the ecosystem convention for this format.
func (PlanarCode) Encode(w io.Writer, p *core.Pool) error {
	n := int(p.Order())
	if n > 255 {
		return emitErrorf("PlanarCode.Encode", "order %d", ErrTooLarge, n)
	}

	buf := make([]byte, 0, n+8)
	buf = append(buf, byte(n))

	for v := 0; v < n; v++ {
		for _, h := range p.Rotation(core.VertexID(v)) {
			buf = append(buf, byte(int(p.End(h))+1))
		}
		buf = append(buf, 0)
	}

	if _, err := w.Write(buf); err != nil {
		return emitErrorf("PlanarCode.Encode", "writing graph of order %d", err, n)
	}
	return nil
}
