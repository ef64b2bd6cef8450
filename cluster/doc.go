// Package cluster implements the proper-cluster graph ST and its auxiliary
// co-occurrence (CO) and fan graphs (spec components B and C): an
// undirected weighted multigraph over leaf-label indices, where each node
// additionally carries the set of original leaf indices it currently
// represents (its node-set) and every node/edge can be hidden and later
// restored without invalidating any other iterator.
//
// All three graph flavors (ST, CO, fan) built for one recursive invocation
// of the supertree procedure share a single node-id space: a node id is
// simply a label.Table index. This lets contract.Build replay the exact
// same merge sequence it performs on ST onto CO and fan, so that "the
// matching edge in CO" for a (possibly already-merged) ST edge is just the
// CO edge between the same two node ids (see contract's doc comment for
// the full rationale).
//
// Graph is single-threaded, matching the engine's concurrency model (spec
// §5): no internal locking, one owner per recursion frame.
package cluster
