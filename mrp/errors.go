package mrp

import "errors"

// ErrNoTrees is returned by Build when given no source trees to encode.
var ErrNoTrees = errors.New("mrp: no source trees")
