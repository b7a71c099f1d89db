// Package emit serializes a finished core.Pool to one of the output
// encodings spec.md §6 enumerates: planar_code, edge_code, graph6,
// sparse6, or ASCII alphabetic, plus the `-d`/`-o`/`-G`/`-V` emission
// modifiers (planar dual, chiral double-emission, flavour flags).
//
// Encoder is the common interface every format implements; Emitter wraps
// one Encoder and applies the modifiers uniformly, so the scanner package
// only ever talks to an Emitter and never a concrete format.
//
// graph6 and sparse6 "lose the embedding" (spec.md §6): they serialize only
// the unembedded combinatorial graph, collected straight from the Pool's
// undirected edges (undirectedEdges in graph6common.go), never the
// rotation order. planar_code and edge_code, by contrast,
// are embedding-aware and walk each vertex's live rotation directly.
//
// No third-party encoding library in the retrieval pack implements
// graph6/sparse6 or the bespoke planar_code/edge_code byte layouts (see
// DESIGN.md); all four formats are therefore hand-rolled against the
// bit-exact layouts spec.md §6 gives.
package emit
