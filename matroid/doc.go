// Package matroid defines the combinatorial structure capability (spec.md
// §4.D) that the CSAR loop and the max-gap algorithms operate against, plus
// its two concrete instances: Uniform (top-k) and Graphic (cycle/circuit
// matroid over an undirected multigraph).
//
// Both instances hold the same core invariant: arm identifiers are assigned
// once at construction, in [0, ArmCount()), and survive contraction and
// deletion unchanged for the lifetime of the instance — only the Arms()
// slice shrinks. Graphic is the one that does real work to uphold this: its
// underlying cgraph.Graph reindexes edge positions on every mutation, so
// Graphic keeps a parallel arms slice mapping "k-th surviving edge
// position" to "that edge's stable arm id" and translates at every
// boundary.
package matroid
