// File: errors.go
// Role: sentinel errors for the seed package.

package seed

import (
	"errors"
	"fmt"
)

// ErrUnknownClass indicates Seed or SpecialCase was asked for a Class value
// outside the enumerated set.
var ErrUnknownClass = errors.New("seed: unknown class")

// seedErrorf wraps an inner error message with the given method context,
// producing "<method>: <message>: <err>" while preserving errors.Is via %w.
func seedErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
