package matroid

import "errors"

// ErrUnknownArm indicates ContractArm or DeleteArm was asked to act on an
// arm id that is not currently a surviving member of the structure. Per
// spec.md §7 this is a programmer error and is not expected to occur during
// normal CSAR operation; it is exported so tests can assert on it directly.
var ErrUnknownArm = errors.New("matroid: arm id is not currently present")
