// File: errors.go
// Role: sentinel errors and the scannerErrorf wrapper, matching ops' and
// connectivity's error-handling texture (spec.md §7 "internal invariant
// violation").

package scanner

import (
	"errors"
	"fmt"
)

// ErrUnsupportedClass is returned when familyOperators has no table entry
// for the requested class (a dispatch bug, never a user-facing condition).
var ErrUnsupportedClass = errors.New("scanner: class has no operator table")

// ErrBadSplit is returned when a Splitter is constructed with an
// out-of-range residue (spec.md §6 "res/mod invalid").
var ErrBadSplit = errors.New("scanner: residue out of range for modulus")

func scannerErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
