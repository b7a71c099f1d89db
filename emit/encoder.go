// File: encoder.go
// Role: the Encoder interface every output format implements.

package emit

import (
	"io"

	"github.com/katalvlaran/planargen/core"
)

// Encoder serializes one finished graph. Header is written once per
// output stream (spec.md §6 "-h write format header"); Encode is called
// once per emitted graph.
type Encoder interface {
	// Header returns the format's stream header, or "" for formats with
	// none (ASCII, edge_code has one but planar_code/edge_code's headers
	// are format-specific strings; ASCII emits nothing here).
	Header() string

	// Encode writes one graph's encoding of p to w.
	Encode(w io.Writer, p *core.Pool) error
}
