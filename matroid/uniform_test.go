package matroid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tanakalab/csar/matroid"
)

// TestUniform_S1 mirrors spec.md §8 S1.
func TestUniform_S1(t *testing.T) {
	u := matroid.NewUniform(3, 2)

	basis, ok := u.Optimal([]float64{1.0, 2.0, 3.0})
	require.True(t, ok)
	require.Equal(t, []int{1, 2}, basis)
}

// TestUniform_S2Boundary mirrors spec.md §8 S2: all-equal weights break
// ties toward the smallest arm id.
func TestUniform_S2Boundary(t *testing.T) {
	u := matroid.NewUniform(4, 1)

	basis, ok := u.Optimal([]float64{5.0, 5.0, 5.0, 5.0})
	require.True(t, ok)
	require.Equal(t, []int{0}, basis)
}

func TestUniform_InfeasibleWhenFewerArmsThanRank(t *testing.T) {
	u := matroid.NewUniform(3, 2)
	u.DeleteArm(0)
	u.DeleteArm(1)

	_, ok := u.Optimal([]float64{1, 2, 3})
	require.False(t, ok)
}

func TestUniform_ContractArmDecrementsRankAndPreservesIDs(t *testing.T) {
	u := matroid.NewUniform(4, 2)
	u.ContractArm(3)

	require.ElementsMatch(t, []int{0, 1, 2}, u.Arms())

	// rank is now 1: optimal over {0,1,2} with these weights picks the
	// single greatest-weight survivor.
	basis, ok := u.Optimal([]float64{1, 2, 3, 0})
	require.True(t, ok)
	require.Equal(t, []int{2}, basis)
}

func TestUniform_ReachabilityGraphHubStructure(t *testing.T) {
	u := matroid.NewUniform(3, 2)
	basis := []int{1, 2}

	dag := u.ReachabilityGraph(basis)
	require.Equal(t, 3, dag.PrimaryCount())
	require.Equal(t, 4, dag.VertexCount()) // primaries 0,1,2 + hub 3

	hub := 3
	fwd := map[int][]int{}
	for _, e := range dag.Edges() {
		fwd[e.From] = append(fwd[e.From], e.To)
	}
	require.ElementsMatch(t, []int{hub}, fwd[1])
	require.ElementsMatch(t, []int{hub}, fwd[2])
	require.ElementsMatch(t, []int{0}, fwd[hub])
}

func TestUniform_DeleteThenContractPanicsOnUnknownArm(t *testing.T) {
	u := matroid.NewUniform(2, 1)
	u.DeleteArm(0)

	require.PanicsWithValue(t, matroid.ErrUnknownArm, func() {
		u.ContractArm(0)
	})
}

func TestUniform_CloneIsIndependent(t *testing.T) {
	u := matroid.NewUniform(3, 2)
	clone := u.Clone()

	u.ContractArm(0)

	require.ElementsMatch(t, []int{1, 2}, u.Arms())
	require.ElementsMatch(t, []int{0, 1, 2}, clone.Arms())
}
