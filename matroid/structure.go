package matroid

import "github.com/tanakalab/csar/reachdag"

// Structure is the capability set spec.md §4.D asks every matroid-like
// combinatorial structure to expose. Both Uniform and Graphic satisfy it;
// csar.Run and maxgap.Fast/Naive depend only on this interface, never on the
// concrete types.
type Structure interface {
	// ArmCount returns the fixed original n, the domain size of any weights
	// vector passed to Optimal. It never changes across Contract/Delete.
	ArmCount() int

	// Arms returns the currently-surviving arm identifiers. Order is not
	// semantically significant.
	Arms() []int

	// ContractArm forces arm id into every future basis and removes it from
	// the ground set. Panics with ErrUnknownArm if id does not currently
	// survive.
	ContractArm(id int)

	// DeleteArm forbids arm id from every future basis and removes it from
	// the ground set. Panics with ErrUnknownArm if id does not currently
	// survive.
	DeleteArm(id int)

	// Optimal returns the arm ids of a maximum-weight basis given weights
	// indexed by arm id (length ArmCount()), or ok=false if no basis exists
	// over the surviving ground set.
	Optimal(weights []float64) (basis []int, ok bool)

	// ReachabilityGraph builds the DAG described in spec.md §3 for the
	// given basis (as returned by a prior Optimal call).
	ReachabilityGraph(basis []int) *reachdag.DAG

	// Clone returns a deep, value-semantic copy sharing no mutable state
	// with the receiver.
	Clone() Structure
}
