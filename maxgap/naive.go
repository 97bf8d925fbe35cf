package maxgap

import (
	"math"

	"github.com/tanakalab/csar/matroid"
)

// Naive returns the surviving arm with the greatest gap, computed directly
// from the definition in spec.md §8 universal invariant 1: clone the
// structure, force the arm's membership to flip (delete it if it is in the
// current optimal basis, contract it otherwise), and compare optimal
// weights before and after. It is the slow reference Fast is checked
// against; production callers should use Fast.
func Naive(s matroid.Structure, weights []float64) int {
	basis, ok := s.Optimal(weights)
	if !ok {
		panic("maxgap: structure has no basis")
	}

	inBasis := make(map[int]bool, len(basis))
	var optWeight float64
	for _, b := range basis {
		inBasis[b] = true
		optWeight += weights[b]
	}

	best := -1
	bestGap := math.Inf(-1)

	for _, id := range s.Arms() {
		clone := s.Clone()

		// The alternative superarm is {id} U optimal(contracted) when id is
		// forced in, so its weight seeds at weights[id] before adding the
		// contracted optimum; when id is forced out, the alternative is
		// optimal(deleted) alone.
		var altWeight float64
		if inBasis[id] {
			clone.DeleteArm(id)
		} else {
			clone.ContractArm(id)
			altWeight = weights[id]
		}

		if altBasis, ok := clone.Optimal(weights); ok {
			for _, b := range altBasis {
				altWeight += weights[b]
			}
		} else {
			altWeight = math.Inf(-1)
		}

		gap := optWeight - altWeight
		if gap > bestGap || (gap == bestGap && (best < 0 || id < best)) {
			bestGap = gap
			best = id
		}
	}

	return best
}
