// File: errors.go
// Role: sentinel errors for the canon package.

package canon

import (
	"errors"
	"fmt"
)

// ErrNoColour indicates Canon was called with an empty or nil colouring.
var ErrNoColour = errors.New("canon: colouring is empty")

// ErrEmptyCandidates indicates CanonEdge/CanonEdgeOriented received no
// candidate half-edges to test.
var ErrEmptyCandidates = errors.New("canon: candidate set is empty")

// ErrRefNotCandidate indicates the reference half-edge passed to
// CanonEdge is not a member of its own candidate set.
var ErrRefNotCandidate = errors.New("canon: reference half-edge not in candidate set")

func canonErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
