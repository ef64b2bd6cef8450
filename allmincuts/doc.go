// Package allmincuts implements the Picard–Queyranne all-minimum-cuts
// extraction (spec component F): for each (s, t) witness pair from the
// min-cut engine, it builds a directed capacity-doubled copy of the
// undirected graph, runs Ford–Fulkerson max-flow from s to t, computes
// the strongly connected components of the residual graph (Tarjan's
// algorithm, explicit stacks per spec §9), and marks every original edge
// whose endpoints land in distinct SCCs as lying in some minimum cut.
//
// The max-flow step is adapted from lvlath's flow.FordFulkerson: the same
// augmenting-paths-via-DFS strategy and EdgeError-shaped error reporting,
// rebuilt here as a small directed network local to this package instead
// of importing lvlath's core.Graph, since every arc pair here is
// throwaway per-witness scratch state (spec §9's "fresh capacity/residual
// array per witness pair" design note) rather than a graph object a
// caller keeps around.
package allmincuts
