// Package maxgap computes, for every surviving arm of a combinatorial
// structure, the weight gap incurred by forcing its membership to flip
// (spec.md §4.I): Fast is the O((n+m) log n) two-sweep oracle driven by the
// structure's reachability DAG; Naive is a slow, structure-agnostic
// reference built directly from Structure.Clone, used only to check Fast
// against in tests.
package maxgap
