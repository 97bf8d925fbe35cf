// Package reachdag builds the reachability DAG that the fast max-gap
// algorithm (package maxgap) sweeps to compute every arm's gap in a single
// pair of topological passes, instead of the O(n) re-optimizations the naive
// reference performs.
//
// A DAG's vertices partition into primary vertices — one per arm identifier
// in [0, armCount), stable for the structure's lifetime — and auxiliary
// vertices minted during binary-lifting path compression. Every primary
// vertex for a basis arm has no incoming edge; every primary vertex for a
// non-basis arm has no outgoing edge; and there is a directed path from
// basis arm b to non-basis arm e iff b lies on e's fundamental circuit with
// respect to the basis.
//
// Build implements the graphic-matroid construction: root the spanning
// tree at vertex 0, binary-lift with path materialization so any 2^k-length
// tree-edge run collapses to one auxiliary vertex, then for every non-tree
// edge equalize depths and climb to the LCA, wiring the non-tree edge to
// every ancestor run it passes through. This is the O((n+m) log n) step
// spec.md calls out as the genuinely intricate subsystem of the engine.
// NewDAG is the escape hatch matroid.Uniform uses for its own trivial
// (hub-and-spoke) reachability graph, which needs no tree at all.
package reachdag
