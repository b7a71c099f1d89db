// File: errors.go
// Role: sentinel errors for the emit package.

package emit

import (
	"errors"
	"fmt"
)

// ErrTooLarge is returned when a graph is too large for an encoding's
// fixed fields: planar_code's single-byte vertex numbers, edge_code's
// single-byte edge ids, or graph6/sparse6's N(n) prefix beyond order
// 258047.
var ErrTooLarge = errors.New("emit: graph too large for this encoding")

// ErrMalformed is returned by ParseASCII when its input does not match
// the ASCII encoder's own output grammar.
var ErrMalformed = errors.New("emit: malformed ASCII input")

func emitErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
