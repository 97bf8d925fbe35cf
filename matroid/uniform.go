package matroid

import (
	"sort"

	"github.com/tanakalab/csar/reachdag"
)

// Uniform is a rank-r uniform matroid over n arms (spec.md §4.E): any
// r-subset of the surviving arms is a basis.
type Uniform struct {
	armCount int
	rank     int
	arms     []int
}

// NewUniform returns a rank-r uniform matroid over arm ids [0, n).
func NewUniform(n, rank int) *Uniform {
	arms := make([]int, n)
	for i := range arms {
		arms[i] = i
	}

	return &Uniform{armCount: n, rank: rank, arms: arms}
}

func (u *Uniform) ArmCount() int { return u.armCount }

func (u *Uniform) Arms() []int { return append([]int(nil), u.arms...) }

func (u *Uniform) indexOf(id int) int {
	for i, a := range u.arms {
		if a == id {
			return i
		}
	}

	return -1
}

func (u *Uniform) remove(id int) {
	i := u.indexOf(id)
	if i < 0 {
		panic(ErrUnknownArm)
	}

	last := len(u.arms) - 1
	u.arms[i] = u.arms[last]
	u.arms = u.arms[:last]
}

// ContractArm drops id from the ground set and decrements the rank, forcing
// every future basis to have included it.
func (u *Uniform) ContractArm(id int) {
	u.remove(id)
	u.rank--
}

// DeleteArm drops id from the ground set without affecting rank.
func (u *Uniform) DeleteArm(id int) {
	u.remove(id)
}

// Optimal returns the rank surviving arms of greatest weight, ties broken
// by ascending arm id. Infeasible (ok=false) iff fewer than rank arms
// survive.
func (u *Uniform) Optimal(weights []float64) ([]int, bool) {
	if len(u.arms) < u.rank {
		return nil, false
	}
	if u.rank <= 0 {
		return []int{}, true
	}

	candidates := append([]int(nil), u.arms...)
	sort.Slice(candidates, func(i, j int) bool {
		wi, wj := weights[candidates[i]], weights[candidates[j]]
		if wi != wj {
			return wi > wj
		}

		return candidates[i] < candidates[j]
	})

	basis := append([]int(nil), candidates[:u.rank]...)
	sort.Ints(basis)

	return basis, true
}

// ReachabilityGraph builds the single-hub DAG from spec.md §4.E: every
// basis arm points into the hub, and the hub points into every non-basis
// surviving arm. This encodes that every basis element lies on the
// fundamental circuit of every non-basis element, which is exactly the
// uniform-matroid circuit structure.
func (u *Uniform) ReachabilityGraph(basis []int) *reachdag.DAG {
	hub := u.armCount

	inBasis := make(map[int]bool, len(basis))
	for _, b := range basis {
		inBasis[b] = true
	}

	var edges []reachdag.Edge
	for _, b := range basis {
		edges = append(edges, reachdag.Edge{From: b, To: hub})
	}
	for _, a := range u.arms {
		if inBasis[a] {
			continue
		}
		edges = append(edges, reachdag.Edge{From: hub, To: a})
	}

	return reachdag.NewDAG(hub+1, u.armCount, edges)
}

// Clone returns a deep copy sharing no mutable state with u.
func (u *Uniform) Clone() Structure {
	return &Uniform{
		armCount: u.armCount,
		rank:     u.rank,
		arms:     append([]int(nil), u.arms...),
	}
}
