package reachdag

// Edge is a directed connection in a reachability DAG, From -> To.
type Edge struct {
	From, To int
}

// DAG is a reachability graph as described in spec.md §3: vertices
// [0, PrimaryCount()) are primary (one per arm identifier), vertices
// [PrimaryCount(), VertexCount()) are auxiliary binary-lifting nodes.
type DAG struct {
	vertexCount  int
	primaryCount int
	edges        []Edge
}

// NewDAG wraps a vertex count, primary/auxiliary boundary, and edge list
// into a DAG value. It performs no validation: callers are expected to
// already satisfy the acyclicity and in/out-degree invariants described in
// the package doc comment.
func NewDAG(vertexCount, primaryCount int, edges []Edge) *DAG {
	return &DAG{
		vertexCount:  vertexCount,
		primaryCount: primaryCount,
		edges:        append([]Edge(nil), edges...),
	}
}

// VertexCount returns the total number of vertices, primary and auxiliary.
func (d *DAG) VertexCount() int {
	return d.vertexCount
}

// PrimaryCount returns the number of primary vertices (the arm domain size).
func (d *DAG) PrimaryCount() int {
	return d.primaryCount
}

// Edges returns a copy of the DAG's directed edge list.
func (d *DAG) Edges() []Edge {
	return append([]Edge(nil), d.edges...)
}
