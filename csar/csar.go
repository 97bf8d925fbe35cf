package csar

import (
	"github.com/tanakalab/csar/maxgap"
	"github.com/tanakalab/csar/matroid"
	"github.com/tanakalab/csar/sampler"
)

// Oracle returns a stochastic real-valued observation for the surviving arm
// id. It must be safe to call at least K*n*n times over the course of a
// Run (spec.md §6).
type Oracle func(id int) float64

// Run executes the CSAR loop over structure (spec.md §4.H): for exactly
// ArmCount() rounds, it samples every surviving arm K times, asks structure
// for its current optimal basis and max-gap arm, then accepts (contracts)
// or rejects (deletes) that arm. It returns the accepted arm ids in
// acceptance order — the algorithm's identified optimal superarm.
//
// Run assumes structure is feasible throughout, per spec.md §7: it panics
// if Optimal ever reports infeasibility, since that signals a violation of
// an invariant the caller is responsible for (the initial instance having a
// basis, and every ContractArm call landing on a basis arm).
func Run(structure matroid.Structure, oracle Oracle, opts ...Option) []int {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	n := structure.ArmCount()
	samplers := make([]*sampler.Sampler, n)
	for i := range samplers {
		samplers[i] = sampler.New()
	}

	var accepted []int

	for round := 0; round < n; round++ {
		arms := structure.Arms()
		for _, id := range arms {
			for k := 0; k < cfg.sampleCount; k++ {
				samplers[id].Observe(oracle(id))
			}
		}

		weights := make([]float64, n)
		for _, id := range arms {
			weights[id] = samplers[id].Mean()
		}

		basis, ok := structure.Optimal(weights)
		if !ok {
			panic("csar: structure became infeasible mid-run")
		}

		inBasis := make(map[int]bool, len(basis))
		for _, b := range basis {
			inBasis[b] = true
		}

		armID := maxgap.Fast(structure, weights)
		accept := inBasis[armID]

		if accept {
			accepted = append(accepted, armID)
			structure.ContractArm(armID)
		} else {
			structure.DeleteArm(armID)
		}

		if cfg.observer != nil {
			cfg.observer(round, armID, accept, weights)
		}
	}

	return accepted
}
