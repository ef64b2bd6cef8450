package cluster

import "errors"

// ErrUnknownNode is returned by operations that reference a node id never
// created with AddNode.
var ErrUnknownNode = errors.New("cluster: unknown node")

// ErrUnknownEdge is returned by HideEdge/RestoreEdge for an id outside the
// graph's edge arena.
var ErrUnknownEdge = errors.New("cluster: unknown edge")

// ErrSelfMerge is returned by Merge when asked to fold a node into itself.
var ErrSelfMerge = errors.New("cluster: cannot merge a node into itself")
