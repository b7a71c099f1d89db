// Package connectivity checks planar embeddings for vertex connectivity
// via Menger's theorem, reduced to a vertex-split maximum-flow problem the
// same way flow.Dinic/flow.EdmondsKarp solve ordinary edge-capacity max-
// flow (spec.md §4.7 "connectivity floor"): polytope.go's edge-deletion
// scan and the mindeg-4/mindeg-5 families' mutual-exclusion checks both
// need a fast "is this graph still k-connected" oracle.
//
// KConnected splits every vertex v into v_in -> v_out (capacity 1, except
// source/sink, whose in->out arc is unbounded so every unit of flow can
// actually leave them), joins adjacent vertices by capacity-1 arcs, and
// runs Dinic's max-flow (flow.go) between enough vertex pairs to decide k-connectivity by Even's algorithm: fix a
// minimum-degree vertex s, test it against every non-neighbour, then test
// all pairs among the k lowest-degree vertices.
//
// Unlike flow's string-keyed core.Graph, the flow network here is built
// directly from a core.Pool's index space (int32 vertex ids, not string
// ones) since this oracle sits on generation's hot path; see DESIGN.md for
// why the string-keyed network was not reused.
package connectivity
