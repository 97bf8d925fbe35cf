package reachdag

import (
	"math/bits"

	"github.com/tanakalab/csar/cgraph"
)

// treeNeighbor is one endpoint of a spanning-tree edge, labeled with the
// arm identifier that owns it (not its transient position in g).
type treeNeighbor struct {
	to  int
	arm int
}

// Build constructs the reachability DAG for a graphic matroid from its
// underlying multigraph g, the current position-to-arm-id mapping posToArm
// (posToArm[i] is the stable arm id of the edge currently at position i),
// the spanning-tree basis as arm ids, and armCount (the fixed original
// number of arms, i.e. the primary-vertex domain size).
//
// Phase 1 roots the tree at vertex 0 via BFS. Phase 2 performs binary
// lifting with path materialization: anc[v][k] is the 2^k-th ancestor of v,
// and ancEdge[v][k] is a DAG vertex standing for the run of 2^k tree edges
// from v up to anc[v][k] (ancEdge[v][0] is simply that edge's arm id; for
// k>=1 it is a freshly minted auxiliary vertex reachable from both
// k-1 halves). Phase 3 wires every non-tree edge to the ancestor runs
// covering its fundamental circuit, climbing to the LCA a largest-power-
// of-two jump at a time.
//
// An arm self-loop (both endpoints the same vertex) has an empty
// fundamental circuit and receives no incoming DAG edge at all; maxgap.Fast
// then sees it as unconstrained (minimum gap seed of +Inf), matching the
// behavior of the Tiramister/CSAR reference this is ported from.
func Build(g *cgraph.Graph, posToArm []int, basisArmIDs []int, armCount int) *DAG {
	vnum := g.VertexCount()
	edges := g.Edges()

	armToPos := make([]int, armCount)
	for i := range armToPos {
		armToPos[i] = -1
	}
	for pos, arm := range posToArm {
		armToPos[arm] = pos
	}

	inTree := make([]bool, len(edges))
	for _, arm := range basisArmIDs {
		pos := armToPos[arm]
		if pos < 0 {
			panic("reachdag: basis references an arm that is not currently present")
		}
		inTree[pos] = true
	}

	adj := make([][]treeNeighbor, vnum)
	for pos, e := range edges {
		if !inTree[pos] {
			continue
		}
		arm := posToArm[pos]
		adj[e.U] = append(adj[e.U], treeNeighbor{to: e.V, arm: arm})
		adj[e.V] = append(adj[e.V], treeNeighbor{to: e.U, arm: arm})
	}

	depth := make([]int, vnum)
	ancVertex := make([][]int, vnum)
	ancEdge := make([][]int, vnum)
	visited := make([]bool, vnum)

	var b builder
	b.nextAux = armCount

	if vnum > 0 {
		queue := make([]int, 0, vnum)
		queue = append(queue, 0)
		visited[0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]

			// Extend u's doubling tables while the next power of two still
			// fits under u's depth; each step materializes one auxiliary
			// vertex covering twice the tree-edge run of the previous step.
			for k := 0; (1 << uint(k+1)) <= depth[u]; k++ {
				v := ancVertex[u][k]
				uv := ancEdge[u][k]
				w := ancVertex[v][k]
				vw := ancEdge[v][k]

				uw := b.newAuxVertex()
				b.addEdge(uv, uw)
				b.addEdge(vw, uw)

				ancVertex[u] = append(ancVertex[u], w)
				ancEdge[u] = append(ancEdge[u], uw)
			}

			for _, nb := range adj[u] {
				if visited[nb.to] {
					continue
				}
				visited[nb.to] = true
				depth[nb.to] = depth[u] + 1
				ancVertex[nb.to] = append(ancVertex[nb.to], u)
				ancEdge[nb.to] = append(ancEdge[nb.to], nb.arm)
				queue = append(queue, nb.to)
			}
		}
	}

	for pos, e := range edges {
		if inTree[pos] {
			continue
		}
		arm := posToArm[pos]
		u, v := e.U, e.V

		for depth[u] != depth[v] {
			if depth[u] < depth[v] {
				u, v = v, u
			}
			k := bits.Len(uint(depth[u]-depth[v])) - 1
			b.addEdge(ancEdge[u][k], arm)
			u = ancVertex[u][k]
		}

		if u == v {
			continue
		}

		kmax := len(ancEdge[u])
		for k := kmax - 1; k >= 0; k-- {
			// u and v share depth here, so their doubling tables are the
			// same length; once a jump shrinks that length below k there is
			// no ancestor run left to compare at this k.
			if len(ancEdge[u]) <= k {
				continue
			}
			if ancVertex[u][k] != ancVertex[v][k] {
				b.addEdge(ancEdge[u][k], arm)
				b.addEdge(ancEdge[v][k], arm)
				u = ancVertex[u][k]
				v = ancVertex[v][k]
			}
		}

		b.addEdge(ancEdge[u][0], arm)
		b.addEdge(ancEdge[v][0], arm)
	}

	return NewDAG(b.nextAux, armCount, b.edges)
}

// builder accumulates auxiliary-vertex allocations and DAG edges while Build
// walks the spanning tree and its non-tree edges.
type builder struct {
	nextAux int
	edges   []Edge
}

func (b *builder) newAuxVertex() int {
	v := b.nextAux
	b.nextAux++

	return v
}

func (b *builder) addEdge(from, to int) {
	b.edges = append(b.edges, Edge{From: from, To: to})
}
