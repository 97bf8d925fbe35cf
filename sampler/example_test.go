package sampler_test

import (
	"fmt"

	"github.com/tanakalab/csar/sampler"
)

func ExampleSampler() {
	s := sampler.New()
	s.Observe(1)
	s.Observe(2)
	s.Observe(3)

	fmt.Println(s.Trial(), s.Mean())
	// Output: 3 2
}
