// File: errors.go
// Role: sentinel errors for the ops package.

package ops

import (
	"errors"
	"fmt"
)

// ErrNoSite indicates FindExtensions found no legal site for an operator on
// the given pool (the search branch is a dead end, not a bug).
var ErrNoSite = errors.New("ops: no legal site")

// ErrCapacity is returned when an Expand call would exceed the pool's
// preallocated capacity; callers should treat this as a configuration
// error (maxOrder too small), not a recoverable condition.
var ErrCapacity = errors.New("ops: pool capacity exhausted during expand")

// ErrIllegalReduce indicates Reduce was asked to undo a site that does not
// actually satisfy the operator's own legality predicate - an operator bug,
// never a normal recursion outcome.
var ErrIllegalReduce = errors.New("ops: site does not satisfy operator legality")

// opsErrorf wraps an inner error message with the given method context,
// producing "<method>: <message>: <err>" while preserving errors.Is via %w.
func opsErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
