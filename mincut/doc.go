// Package mincut implements the Stoer–Wagner global minimum-cut algorithm
// (spec component E) over a small, standalone undirected weighted
// multigraph representation: callers hand in a node-id list and an edge
// list (typically a snapshot of a cluster.Graph's live nodes/edges) and
// get back the cut value and every (s, t) witness pair realizing it.
//
// This package does not import cluster: the algorithm is generic over
// any undirected weighted multigraph, and keeping it standalone matches
// how the spec frames component E as a reusable engine, independent of
// the proper-cluster graph's node-set/hide-restore bookkeeping.
package mincut
