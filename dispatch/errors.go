// File: errors.go
// Role: sentinel errors for the dispatch package.

package dispatch

import (
	"errors"
	"fmt"
)

// ErrMissingOrder indicates n was not supplied; n is the one required
// argument (spec.md §6 "n | Target order (required)").
var ErrMissingOrder = errors.New("dispatch: target order n is required")

// ErrBadOrder indicates n was supplied but out of range (n <= 0, or below
// the chosen class's seed order with no special case available).
var ErrBadOrder = errors.New("dispatch: target order out of range")

// ErrBadSplit indicates res/mod were supplied outside 0 <= res < mod.
var ErrBadSplit = errors.New("dispatch: residue out of range for modulus")

// ErrConflictingClass indicates more than one class-selecting flag
// (-p, -b, -q, -P, -A) was supplied; exactly one or zero (plain
// triangulations) is legal.
var ErrConflictingClass = errors.New("dispatch: conflicting class-selecting flags")

// ErrConflictingEncoding indicates more than one of -a/-g/-s/-E was
// supplied; exactly one or zero (defaults to planar_code) is legal.
var ErrConflictingEncoding = errors.New("dispatch: conflicting output-encoding flags")

// ErrBadConnectivity indicates -c k was supplied outside the 1..5 range
// spec.md §6 allows, or outside the range the chosen class permits.
var ErrBadConnectivity = errors.New("dispatch: connectivity floor out of range")

// ErrBadEdgeRange indicates -e a[:b] failed to parse, or had b < a.
var ErrBadEdgeRange = errors.New("dispatch: malformed edge-count range")

// ErrUnsupportedCombination indicates a flag combination that parses
// individually but names no resolvable class (e.g. -m together with a
// class-selecting flag).
var ErrUnsupportedCombination = errors.New("dispatch: unsupported flag combination")

// ErrBadMinDegree indicates -m k was supplied with k other than 4 or 5,
// the only two minimum-degree triangulation families this module builds.
var ErrBadMinDegree = errors.New("dispatch: minimum degree must be 4 or 5")

func dispatchErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
