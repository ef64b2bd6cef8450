package mincut

import "errors"

// ErrNoNodes is returned by Run when given an empty node list.
var ErrNoNodes = errors.New("mincut: no nodes")
