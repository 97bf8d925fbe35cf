// Package csar implements the Combinatorial Successive Accept-Reject loop
// (spec.md §4.H): the pure-exploration outer loop that alternately samples
// every surviving arm, asks the structure for its current optimal basis and
// its max-gap arm, and either accepts (contracts) or rejects (deletes) that
// arm. It runs for exactly ArmCount() rounds, at which point every arm has
// been classified and the structure is empty.
package csar
