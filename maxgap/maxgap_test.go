package maxgap_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tanakalab/csar/cgraph"
	"github.com/tanakalab/csar/maxgap"
	"github.com/tanakalab/csar/matroid"
)

// TestMaxGap_S1Uniform mirrors spec.md §8 S1: n=3, rank=2, w=[1,2,3];
// fast_maxgap returns arm 2.
func TestMaxGap_S1Uniform(t *testing.T) {
	weights := []float64{1.0, 2.0, 3.0}
	u := matroid.NewUniform(3, 2)

	require.Equal(t, 2, maxgap.Fast(u, weights))
	require.Equal(t, 2, maxgap.Naive(matroid.NewUniform(3, 2), weights))
}

// TestMaxGap_S2UniformBoundary mirrors spec.md §8 S2: all-equal weights,
// ties broken toward the smallest arm id.
func TestMaxGap_S2UniformBoundary(t *testing.T) {
	weights := []float64{5.0, 5.0, 5.0, 5.0}
	u := matroid.NewUniform(4, 1)

	require.Equal(t, 0, maxgap.Fast(u, weights))
	require.Equal(t, 0, maxgap.Naive(matroid.NewUniform(4, 1), weights))
}

// TestMaxGap_S3Triangle mirrors spec.md §8 S3: arm 2 has the largest gap.
func TestMaxGap_S3Triangle(t *testing.T) {
	weights := []float64{1.0, 2.0, 3.0}
	newGraph := func() matroid.Structure {
		return matroid.NewGraphic(cgraph.FromEdges([]cgraph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}}))
	}

	require.Equal(t, 2, maxgap.Fast(newGraph(), weights))
	require.Equal(t, 2, maxgap.Naive(newGraph(), weights))
}

// TestMaxGap_S4FourCycleAgreesWithNaive mirrors spec.md §8 S4: fast and
// naive must agree, whatever the tied-weight answer turns out to be.
func TestMaxGap_S4FourCycleAgreesWithNaive(t *testing.T) {
	weights := []float64{4, 1, 4, 1}
	newGraph := func() matroid.Structure {
		return matroid.NewGraphic(cgraph.FromEdges([]cgraph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 0, V: 3}}))
	}

	require.Equal(t, maxgap.Naive(newGraph(), weights), maxgap.Fast(newGraph(), weights))
}

// TestMaxGap_FastAgreesWithNaiveOnRandomGraphicInstances is the randomized
// property test for spec.md §8 universal invariant 2 (fast/naive
// agreement) over the graphic matroid.
func TestMaxGap_FastAgreesWithNaiveOnRandomGraphicInstances(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for trial := 0; trial < 20; trial++ {
		const vnum = 8
		const edgeNum = 14
		g := cgraph.New(vnum)

		inTree := []int{0}
		outTree := make([]int, vnum-1)
		for i := range outTree {
			outTree[i] = i + 1
		}
		for len(outTree) > 0 {
			ui := rng.IntN(len(inTree))
			vi := rng.IntN(len(outTree))
			u, v := inTree[ui], outTree[vi]
			g.AddEdge(u, v)
			inTree = append(inTree, v)
			outTree[vi] = outTree[len(outTree)-1]
			outTree = outTree[:len(outTree)-1]
		}
		seen := map[cgraph.Edge]bool{}
		for _, e := range g.Edges() {
			seen[e] = true
		}
		for g.EdgeCount() < edgeNum {
			u, v := rng.IntN(vnum), rng.IntN(vnum)
			if u == v {
				continue
			}
			if u > v {
				u, v = v, u
			}
			if seen[cgraph.Edge{U: u, V: v}] {
				continue
			}
			seen[cgraph.Edge{U: u, V: v}] = true
			g.AddEdge(u, v)
		}

		weights := make([]float64, g.EdgeCount())
		// Distinct weights: spec.md §8 property 2 requires non-degenerate
		// (distinct) weights for the fast/naive agreement guarantee.
		perm := rng.Perm(len(weights))
		for i, p := range perm {
			weights[i] = float64(p) + rng.Float64()*0.01
		}

		gm := matroid.NewGraphic(g)
		gmClone := gm.Clone()

		require.Equal(t, maxgap.Naive(gm, weights), maxgap.Fast(gmClone, weights))
	}
}

// TestMaxGap_FastAgreesWithNaiveOnRandomUniformInstances covers the uniform
// matroid side of the same property.
func TestMaxGap_FastAgreesWithNaiveOnRandomUniformInstances(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	for trial := 0; trial < 20; trial++ {
		const n = 9
		rank := 1 + rng.IntN(n-1)

		weights := make([]float64, n)
		perm := rng.Perm(n)
		for i, p := range perm {
			weights[i] = float64(p) + rng.Float64()*0.01
		}

		require.Equal(t,
			maxgap.Naive(matroid.NewUniform(n, rank), weights),
			maxgap.Fast(matroid.NewUniform(n, rank), weights),
		)
	}
}
