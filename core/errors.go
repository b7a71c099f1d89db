// File: errors.go
// Role: sentinel errors for the core package.
//
// Error policy (explicit and strict, mirrors builder/errors.go):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     implementations attach context with coreErrorf.
//   - Verify never panics; it returns an error naming the violated invariant.

package core

import (
	"errors"
	"fmt"
)

// ErrCapacity indicates the pool's fixed half-edge or vertex slab is
// exhausted. The pool is sized once at NewPool time for the largest graph
// the caller's search tree will reach; this error means that bound was
// wrong, not that the pool should grow.
var ErrCapacity = errors.New("core: pool capacity exhausted")

// ErrBadDegree indicates FreeVertex was asked to free a vertex that still
// has incident half-edges (non-zero degree).
var ErrBadDegree = errors.New("core: invalid resulting degree")

// ErrFreeSlot indicates FreeEdgePair was called on a half-edge that is not a
// live, allocated pair (double free or alien id).
var ErrFreeSlot = errors.New("core: half-edge is not a live allocation")

// ErrInvariant indicates Verify found the rotation system, a face cycle, or
// a degree/first-edge relationship inconsistent. This is never expected to
// fire in a released build; it indicates an operator bug.
var ErrInvariant = errors.New("core: invariant violation")

// coreErrorf wraps an inner error message with the given method context,
// producing "<method>: <message>: <err>" while preserving errors.Is via %w.
func coreErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
