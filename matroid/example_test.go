package matroid_test

import (
	"fmt"

	"github.com/tanakalab/csar/matroid"
)

// ExampleUniform mirrors spec.md §8 S1: n=3, rank=2, weights [1,2,3]. The
// optimal basis is {1,2}.
func ExampleUniform() {
	u := matroid.NewUniform(3, 2)

	basis, ok := u.Optimal([]float64{1.0, 2.0, 3.0})
	fmt.Println(ok, basis)
	// Output: true [1 2]
}
