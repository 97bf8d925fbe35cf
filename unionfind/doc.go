// Package unionfind implements a disjoint-set forest over the dense integer
// domain [0, n), with union-by-size and path compression.
//
// It backs one caller in this module: cgraph.Graph.MaximumSpanningTree
// (Kruskal's algorithm needs cycle detection while greedily adding edges).
//
// Complexity: Find and Unite are O(alpha(n)) amortized, where alpha is the
// inverse Ackermann function; for any n that fits in memory this is, in
// practice, a small constant.
package unionfind
