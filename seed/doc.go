// Package seed builds the fixed small base graphs each generation class
// recurses from (spec.md §4.8): K4 for ordinary triangulations, the
// octahedron for mindeg-4 and bipartite triangulations, the icosahedron
// for mindeg-5 triangulations, the cube for 3-connected quadrangulations,
// and the 4-cycle for general quadrangulations. Each is written in
// platonic.go as an explicit rotation system and handed to core.Bootstrap.
//
// SpecialCase covers target orders below a class's seed order, which
// spec.md §4.8 says are emitted directly rather than reached by recursion.
package seed
