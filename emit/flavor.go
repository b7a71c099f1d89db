// File: flavor.go
// Role: the literal text of the `-G`/`-V` emission flavour modifiers
// (spec.md §6), kept in one place so Emitter stays format-agnostic.

package emit

import "strconv"

func graphFlavorLine(index int) string {
	return ">G " + strconv.Itoa(index) + "\n"
}

func vertexCountLine(order int) string {
	return ">V " + strconv.Itoa(order) + "\n"
}
