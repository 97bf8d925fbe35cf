package cgraph

import (
	"sort"

	"github.com/tanakalab/csar/unionfind"
)

// MaximumSpanningTree computes a maximum-weight spanning tree by Kruskal's
// algorithm: edges are visited in descending weight order, ties broken by
// ascending edge index (a stable sort over the identity permutation), and an
// edge is kept whenever its endpoints are not already connected.
//
// weights must have exactly EdgeCount() entries, indexed by current edge
// position; a length mismatch is a programmer error and panics.
//
// Returns ErrDisconnected if the surviving edges do not connect every
// vertex (spec.md §4.B: "signals infeasibility").
func (g *Graph) MaximumSpanningTree(weights []float64) ([]int, error) {
	if len(weights) != len(g.edges) {
		panic("cgraph: weights length does not match edge count")
	}
	if g.vnum == 0 {
		return nil, ErrDisconnected
	}

	order := make([]int, len(g.edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return weights[order[a]] > weights[order[b]]
	})

	uf := unionfind.New(g.vnum)
	tree := make([]int, 0, g.vnum-1)
	for _, i := range order {
		e := g.edges[i]
		if e.U == e.V {
			continue // self-loop: can never join a spanning tree
		}
		if !uf.Same(e.U, e.V) {
			uf.Unite(e.U, e.V)
			tree = append(tree, i)
		}
	}

	if len(tree) != g.vnum-1 {
		return nil, ErrDisconnected
	}

	return tree, nil
}
