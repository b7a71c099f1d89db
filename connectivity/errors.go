package connectivity

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices is returned when a graph has fewer than k+1 vertices,
// making k-connectivity undefined.
var ErrTooFewVertices = errors.New("connectivity: fewer than k+1 vertices")

func connErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
