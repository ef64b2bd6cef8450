package allmincuts

import (
	"errors"
	"fmt"
)

// ErrUnknownWitness is returned when a witness pair names a node absent
// from the supplied node list.
var ErrUnknownWitness = errors.New("allmincuts: witness references an unknown node")

// EdgeError reports a malformed edge fed into the flow network, mirroring
// lvlath's flow.EdgeError shape for a negative-capacity edge.
type EdgeError struct {
	From, To int
	Weight   int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("allmincuts: negative weight on edge %d->%d: %d", e.From, e.To, e.Weight)
}

