// File: errors.go
// Role: sentinel errors for the stats package.

package stats

import (
	"errors"
	"fmt"
)

// ErrDisconnected is returned by diameter when the graph (which should
// never happen for a live core.Pool, but diameter is defensive since it
// is also reachable from test code building adjacency by hand) has a
// vertex pair with no path between them.
var ErrDisconnected = errors.New("stats: graph is disconnected")

func statsErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
