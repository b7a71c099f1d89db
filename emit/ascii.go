// File: ascii.go
// Role: the ASCII alphabetic encoder (spec.md §6 "Output formats") and
// its test-only inverse, ParseASCII, used by the "recompute canonical
// form of every output" testable property (spec.md §8) without deriving
// a parser from scratch in test code.
//
// Layout: "n " followed by per-vertex rotation lists with alphabetic
// neighbour names (a, b, ..., z, aa, ab, ...), comma-separated within a
// vertex's list, semicolon-separated between vertices, terminated by a
// newline.

package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/planargen/core"
)

// ASCII implements Encoder for the alphabetic ASCII format.
type ASCII struct{}

func (ASCII) Header() string { return "" }

func (ASCII) Encode(w io.Writer, p *core.Pool) error {
	n := int(p.Order())

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d ", n)
	for v := 0; v < n; v++ {
		if v > 0 {
			sb.WriteByte(';')
		}
		for i, h := range p.Rotation(core.VertexID(v)) {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(alphaName(int(p.End(h))))
		}
	}
	sb.WriteByte('\n')

	if _, err := w.Write([]byte(sb.String())); err != nil {
		return emitErrorf("ASCII.Encode", "writing graph of order %d", err, n)
	}
	return nil
}

// alphaName renders vertex id i as a base-26 alphabetic name: 0->"a",
// 25->"z", 26->"aa", matching a spreadsheet-column-style encoding.
func alphaName(i int) string {
	var buf []byte
	for {
		buf = append([]byte{byte('a' + i%26)}, buf...)
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	return string(buf)
}

// alphaIndex is alphaName's inverse.
func alphaIndex(s string) (int, error) {
	if s == "" {
		return 0, emitErrorf("alphaIndex", "empty vertex name", ErrMalformed)
	}
	n := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return 0, emitErrorf("alphaIndex", "name %q", ErrMalformed, s)
		}
		n = (n+1)*26 + int(c-'a')
	}
	return n, nil
}

// ParseASCII recovers the rotation-neighbour lists ASCII.Encode produced,
// as a [][]int of vertex ids per vertex in rotation order. Test-only: it
// does not reconstruct a core.Pool (doing so would need face information
// ASCII's layout does not carry), only the adjacency-with-order data
// spec.md §8's canonical-form recomputation scenario needs.
func ParseASCII(s string) ([][]int, error) {
	s = strings.TrimSuffix(s, "\n")
	parts := strings.SplitN(s, " ", 2)
	if len(parts) != 2 {
		return nil, emitErrorf("ParseASCII", "missing vertex-count prefix", ErrMalformed)
	}

	var n int
	if _, err := fmt.Sscanf(parts[0], "%d", &n); err != nil {
		return nil, emitErrorf("ParseASCII", "vertex count %q", ErrMalformed, parts[0])
	}

	rows := strings.Split(parts[1], ";")
	if len(rows) != n {
		return nil, emitErrorf("ParseASCII", "expected %d vertices, got %d rows", ErrMalformed, n, len(rows))
	}

	out := make([][]int, n)
	for v, row := range rows {
		if row == "" {
			continue
		}
		for _, name := range strings.Split(row, ",") {
			idx, err := alphaIndex(name)
			if err != nil {
				return nil, emitErrorf("ParseASCII", "vertex %d", err, v)
			}
			out[v] = append(out[v], idx)
		}
	}
	return out, nil
}
