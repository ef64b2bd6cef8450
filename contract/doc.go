// Package contract builds ST/Eₘₐₓ from a proper-cluster graph (spec
// component D): phase 1 contracts every edge whose weight equals the sum
// of all source-tree weights (the classical Semple–Steel unanimous-
// nesting contraction); an optional phase 2 additionally contracts every
// "uncontradicted" edge using the co-occurrence (CO) and fan auxiliary
// graphs (the ROD1 extension).
//
// Both phases mutate the ST, CO and fan graphs in lockstep: whenever a
// node t is folded into a node s in ST, the identical Merge(s, t) is
// replayed on CO and fan. Because all three graphs share one node-id
// space (see the cluster package doc comment), this keeps "the matching
// edge in CO for ST edge (u, v)" always resolvable as CO.EdgeBetween(u,
// v), with no separate reconciliation of node identity across graphs.
package contract
