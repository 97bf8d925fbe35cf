package maxgap

import (
	"math"

	"github.com/tanakalab/csar/matroid"
)

// Fast returns the surviving arm with the greatest gap in O((n+m) log n),
// per spec.md §4.I: one reverse-direction topological sweep over the
// structure's reachability DAG computes every basis arm's gap, one
// forward-direction sweep computes every non-basis arm's gap.
func Fast(s matroid.Structure, weights []float64) int {
	basis, ok := s.Optimal(weights)
	if !ok {
		panic("maxgap: structure has no basis")
	}

	inBasis := make(map[int]bool, len(basis))
	for _, b := range basis {
		inBasis[b] = true
	}

	dag := s.ReachabilityGraph(basis)
	n := dag.VertexCount()
	primaryCount := dag.PrimaryCount()
	edges := dag.Edges()

	fwd := make([][]int, n)
	rev := make([][]int, n)
	outDeg := make([]int, n)
	inDeg := make([]int, n)
	for _, e := range edges {
		fwd[e.From] = append(fwd[e.From], e.To)
		rev[e.To] = append(rev[e.To], e.From)
		outDeg[e.From]++
		inDeg[e.To]++
	}

	weightOf := func(v int) float64 {
		if v < primaryCount {
			return weights[v]
		}

		return 0
	}

	// Pass 1: reverse-direction sweep seeded at non-basis primaries,
	// computing the best swap-out weight for every basis arm.
	big := make([]float64, n)
	for v := range big {
		if v < primaryCount && !inBasis[v] {
			big[v] = weightOf(v)
		} else {
			big[v] = math.Inf(-1)
		}
	}

	queue := make([]int, 0, n)
	remainingOut := append([]int(nil), outDeg...)
	for v, d := range remainingOut {
		if d == 0 {
			queue = append(queue, v)
		}
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range rev[v] {
			if big[v] > big[u] {
				big[u] = big[v]
			}
			remainingOut[u]--
			if remainingOut[u] == 0 {
				queue = append(queue, u)
			}
		}
	}

	// Pass 2: forward-direction sweep seeded at basis primaries, computing
	// the weakest swap-partner weight for every non-basis arm.
	small := make([]float64, n)
	for v := range small {
		if v < primaryCount && inBasis[v] {
			small[v] = weightOf(v)
		} else {
			small[v] = math.Inf(1)
		}
	}

	queue = queue[:0]
	remainingIn := append([]int(nil), inDeg...)
	for v, d := range remainingIn {
		if d == 0 {
			queue = append(queue, v)
		}
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, to := range fwd[v] {
			if small[v] < small[to] {
				small[to] = small[v]
			}
			remainingIn[to]--
			if remainingIn[to] == 0 {
				queue = append(queue, to)
			}
		}
	}

	best := -1
	bestGap := math.Inf(-1)
	for _, id := range s.Arms() {
		var gap float64
		if inBasis[id] {
			gap = weights[id] - big[id]
		} else {
			gap = small[id] - weights[id]
		}

		if gap > bestGap || (gap == bestGap && (best < 0 || id < best)) {
			bestGap = gap
			best = id
		}
	}

	return best
}
