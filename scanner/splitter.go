// File: splitter.go
// Role: Splitter, the res/mod crossing detector of spec.md §4.6.

package scanner

// Splitter decides, each time the recursion crosses a fixed splitlevel,
// whether the current residue owns this subtree. Splitting is off
// (ShouldDescend always true) when mod <= 1. Successive crossings are
// numbered 0, 1, 2, ...; residue res owns exactly the crossings whose
// number is congruent to res modulo mod, so the mod residues partition
// the full tree exactly once each.
type Splitter struct {
	level int
	res   int
	mod   int
	seen  int
}

// NewSplitter builds a Splitter for the given splitlevel, residue and
// modulus. res must satisfy 0 <= res < mod when mod > 1.
func NewSplitter(level, res, mod int) (*Splitter, error) {
	if mod > 1 && (res < 0 || res >= mod) {
		return nil, scannerErrorf("NewSplitter", "res=%d, mod=%d", ErrBadSplit, res, mod)
	}
	return &Splitter{level: level, res: res, mod: mod}, nil
}

// ShouldDescend reports whether the subtree just reached, having moved
// the graph's order from prevOrder to newOrder in one expand, belongs to
// this residue. It is a no-op (always true) unless the expansion's order
// range (prevOrder, newOrder] contains level - the "detect the crossing
// at the current order or one less" rule for operators that add >= 2
// vertices in one step (spec.md §4.6).
func (s *Splitter) ShouldDescend(prevOrder, newOrder int) bool {
	if s.mod <= 1 {
		return true
	}
	if s.level <= prevOrder || s.level > newOrder {
		return true
	}
	hit := s.seen%s.mod == s.res
	s.seen++
	return hit
}
