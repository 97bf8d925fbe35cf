// Package sampler implements the running empirical mean estimator CSAR
// uses to track each arm's observed weight (spec.md §4.G). It holds no
// dependency on the structure or oracle: csar.Run owns one Sampler per
// arm and feeds it observations drawn from the arm's oracle each round.
package sampler
