// File: edgecode.go
// Role: the edge_code encoder (spec.md §6 "Output formats").
//
// Layout: stream header ">>edge_code<<"; per graph a length prefix (one
// byte if the body fits in 255 bytes, otherwise a magic zero followed by
// a one-byte width then the body length big-endian in that many bytes),
// then for each vertex the list of undirected-edge ids in rotation order,
// separator 0xFF. Edge ids are assigned in order of first visit (the
// first time each undirected edge is encountered walking vertices 0..n-1
// in rotation order).

package emit

import (
	"encoding/binary"
	"io"

	"github.com/katalvlaran/planargen/core"
)

const edgeCodeHeader = ">>edge_code<<"
const edgeCodeSeparator = 0xFF

// EdgeCode implements Encoder for the edge_code format.
type EdgeCode struct{}

func (EdgeCode) Header() string { return edgeCodeHeader }

func (EdgeCode) Encode(w io.Writer, p *core.Pool) error {
	n := int(p.Order())

	edgeID := make(map[core.HalfEdgeID]int)
	next := 0

	body := make([]byte, 0, 4*n)
	for v := 0; v < n; v++ {
		for _, h := range p.Rotation(core.VertexID(v)) {
			key := p.Min(h)
			id, ok := edgeID[key]
			if !ok {
				id = next
				edgeID[key] = id
				next++
			}
			if id > 254 {
				return emitErrorf("EdgeCode.Encode", "edge id %d", ErrTooLarge, id)
			}
			body = append(body, byte(id))
		}
		body = append(body, edgeCodeSeparator)
	}

	var prefix []byte
	if len(body) <= 255 {
		prefix = []byte{byte(len(body))}
	} else {
		width := 4
		lenBytes := make([]byte, width)
		binary.BigEndian.PutUint32(lenBytes, uint32(len(body)))
		prefix = append([]byte{0, byte(width)}, lenBytes...)
	}

	if _, err := w.Write(prefix); err != nil {
		return emitErrorf("EdgeCode.Encode", "writing length prefix", err)
	}
	if _, err := w.Write(body); err != nil {
		return emitErrorf("EdgeCode.Encode", "writing body of order %d", err, n)
	}
	return nil
}
