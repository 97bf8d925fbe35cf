package cgraph

// Edge is an undirected connection between two vertex indices. U and V are
// not ordered relative to each other by the type itself; Contract imposes
// s <= t internally but callers should not rely on field order.
type Edge struct {
	U, V int
}

// Graph is an ordered sequence of undirected edges over [0, vnum) vertices.
// Edge positions are authoritative but not stable across Contract/Delete:
// both use swap-last removal, so edge index i may refer to a different edge
// after either call returns.
type Graph struct {
	edges []Edge
	vnum  int
}

// New returns an empty graph with vnum vertices and no edges.
func New(vnum int) *Graph {
	return &Graph{vnum: vnum}
}

// FromEdges builds a graph from a fixed edge list. vnum is widened to
// max(u,v)+1 across all edges if that exceeds the vertex count implied by
// the edges alone.
func FromEdges(edges []Edge) *Graph {
	g := &Graph{edges: append([]Edge(nil), edges...)}
	for _, e := range g.edges {
		g.growTo(e.U, e.V)
	}

	return g
}

func (g *Graph) growTo(u, v int) {
	if m := max(u, v) + 1; m > g.vnum {
		g.vnum = m
	}
}

// VertexCount returns the current number of vertices.
func (g *Graph) VertexCount() int {
	return g.vnum
}

// EdgeCount returns the current number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Edges returns a copy of the current edge sequence, indexed by current
// edge position.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// EdgeAt returns the edge currently at position i.
func (g *Graph) EdgeAt(i int) Edge {
	return g.edges[i]
}

// AddEdge appends edge (u, v). Self-loops and parallel edges are both
// permitted; vnum widens to max(u,v)+1 if needed.
func (g *Graph) AddEdge(u, v int) {
	g.edges = append(g.edges, Edge{U: u, V: v})
	g.growTo(u, v)
}

// ContractByEdge merges the endpoints of edge i into one vertex and removes
// edge i, per spec.md §4.B: letting (s, t) = edges[i] with s <= t, every
// endpoint equal to t is renamed to s, every endpoint greater than t is
// decremented, vnum shrinks by one, and edge i is removed via swap-last.
// Self-loops this produces are retained (Kruskal filters them).
func (g *Graph) ContractByEdge(i int) {
	s, t := g.edges[i].U, g.edges[i].V
	if s > t {
		s, t = t, s
	}

	for k := range g.edges {
		e := &g.edges[k]
		if e.U == t {
			e.U = s
		} else if e.U > t {
			e.U--
		}
		if e.V == t {
			e.V = s
		} else if e.V > t {
			e.V--
		}
	}

	g.swapRemove(i)
	g.vnum--
}

// DeleteEdge removes edge i via swap-last; vnum is unchanged.
func (g *Graph) DeleteEdge(i int) {
	g.swapRemove(i)
}

func (g *Graph) swapRemove(i int) {
	last := len(g.edges) - 1
	g.edges[i] = g.edges[last]
	g.edges = g.edges[:last]
}

// Clone returns a deep, value-semantic copy that shares nothing mutable
// with g. Required by maxgap.Naive, which hypothesizes a mutation per arm
// by cloning the enclosing structure.
func (g *Graph) Clone() *Graph {
	return &Graph{edges: append([]Edge(nil), g.edges...), vnum: g.vnum}
}
