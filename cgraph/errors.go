package cgraph

import "errors"

// ErrDisconnected indicates that MaximumSpanningTree could not find a
// spanning tree because the surviving edges do not connect every vertex.
var ErrDisconnected = errors.New("cgraph: graph is disconnected")
