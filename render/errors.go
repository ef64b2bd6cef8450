package render

import "errors"

// ErrEmptyTree is returned by PostScript and NexusTrees when asked to
// render a tree with no nodes.
var ErrEmptyTree = errors.New("render: empty tree")
