// Package cgraph implements the positional-edge undirected multigraph that
// backs the graphic (circuit) matroid.
//
// cgraph.Graph indexes vertices and edges by small dense integers and makes
// no promise that an edge's position in the slice is stable across
// mutation: ContractByEdge and DeleteEdge both use swap-last removal, so edge i may
// become a different edge after either call. matroid.Graphic is the
// component that recovers a stable arm identifier across these reshuffles
// (see its doc comment).
//
// What & why
//
//   - ContractByEdge(i): merges the endpoints of edge i into one vertex, decrements
//     the vertex count, and removes edge i. Models "this arm/edge is forced
//     into every future basis" for the graphic matroid.
//   - DeleteEdge(i): drops edge i outright. Models "this arm/edge is forbidden
//     from every future basis".
//   - MaximumSpanningTree(weights): Kruskal's algorithm over a
//     unionfind.UnionFind, edges visited in descending weight order with
//     ties broken by ascending edge index (stable sort).
//
// Self-loops and parallel edges are both permitted; ContractByEdge can produce
// self-loops (from any edge parallel to the contracted one), and these
// are retained rather than filtered — MaximumSpanningTree filters them at
// use time, since a self-loop can never usefully join a spanning tree.
//
// Complexity: AddEdge/DeleteEdge are O(1) amortized; ContractByEdge is O(m) (every
// edge's endpoints may need renumbering); MaximumSpanningTree is
// O(m log m + m alpha(v)).
package cgraph
