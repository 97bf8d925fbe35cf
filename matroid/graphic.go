package matroid

import (
	"github.com/tanakalab/csar/cgraph"
	"github.com/tanakalab/csar/reachdag"
)

// Graphic is the circuit matroid of an undirected multigraph (spec.md
// §4.F): an arm is an edge, and a basis is a spanning tree. Optimal reports
// no basis (ok=false) when the surviving edges leave the graph disconnected;
// spanning forests are not returned.
//
// arms[pos] is the stable arm id of the edge currently at position pos in
// g — "the k-th surviving arm id corresponds to the k-th edge" per the
// spec's invariant. ContractArm/DeleteArm translate an arm id to its
// current position by linear search before delegating to g, and keep arms
// in lockstep with g's own swap-last removal so the mapping never drifts.
type Graphic struct {
	g        *cgraph.Graph
	armCount int
	arms     []int
}

// NewGraphic wraps g, assigning arm id i to the edge currently at position
// i. g's current edge count becomes the matroid's fixed arm domain size.
func NewGraphic(g *cgraph.Graph) *Graphic {
	n := g.EdgeCount()
	arms := make([]int, n)
	for i := range arms {
		arms[i] = i
	}

	return &Graphic{g: g, armCount: n, arms: arms}
}

func (gm *Graphic) ArmCount() int { return gm.armCount }

func (gm *Graphic) Arms() []int { return append([]int(nil), gm.arms...) }

func (gm *Graphic) positionOf(id int) int {
	for pos, a := range gm.arms {
		if a == id {
			return pos
		}
	}

	return -1
}

// ContractArm merges the endpoints of id's edge and removes id from the
// ground set, per spec.md §4.B/§4.F.
func (gm *Graphic) ContractArm(id int) {
	pos := gm.positionOf(id)
	if pos < 0 {
		panic(ErrUnknownArm)
	}

	gm.g.ContractByEdge(pos)
	gm.swapRemove(pos)
}

// DeleteArm removes id's edge and id from the ground set.
func (gm *Graphic) DeleteArm(id int) {
	pos := gm.positionOf(id)
	if pos < 0 {
		panic(ErrUnknownArm)
	}

	gm.g.DeleteEdge(pos)
	gm.swapRemove(pos)
}

// swapRemove mirrors cgraph.Graph's own swap-last edge removal so arms
// stays aligned to g's positions after the call above.
func (gm *Graphic) swapRemove(pos int) {
	last := len(gm.arms) - 1
	gm.arms[pos] = gm.arms[last]
	gm.arms = gm.arms[:last]
}

// Optimal permutes weights (indexed by arm id) into position order, runs
// Kruskal, and maps the resulting edge positions back to arm ids.
func (gm *Graphic) Optimal(weights []float64) ([]int, bool) {
	posWeights := make([]float64, len(gm.arms))
	for pos, id := range gm.arms {
		posWeights[pos] = weights[id]
	}

	tree, err := gm.g.MaximumSpanningTree(posWeights)
	if err != nil {
		return nil, false
	}

	basis := make([]int, len(tree))
	for i, pos := range tree {
		basis[i] = gm.arms[pos]
	}

	return basis, true
}

// ReachabilityGraph delegates to reachdag.Build using the current
// position-to-arm mapping.
func (gm *Graphic) ReachabilityGraph(basis []int) *reachdag.DAG {
	return reachdag.Build(gm.g, gm.arms, basis, gm.armCount)
}

// Clone returns a deep copy sharing no mutable state with gm.
func (gm *Graphic) Clone() Structure {
	return &Graphic{
		g:        gm.g.Clone(),
		armCount: gm.armCount,
		arms:     append([]int(nil), gm.arms...),
	}
}
