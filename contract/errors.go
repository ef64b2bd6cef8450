package contract

import "errors"

// ErrEmptyGraph is returned when Build is called on a proper-cluster
// graph with no live nodes; building ST/Eₘₐₓ on an empty frame is an
// invariant violation upstream, not a condition this package recovers
// from.
var ErrEmptyGraph = errors.New("contract: empty proper-cluster graph")
