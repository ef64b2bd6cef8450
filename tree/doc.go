// Package tree implements the in-memory rooted, leaf-labeled tree store
// (component A of the supertree engine): Newick parsing and emission,
// leaf/label cluster construction, subtree copy, and leaf pruning.
//
// A Tree is an arena: nodes live in a single flat slice addressed by integer
// index, with parent/first-child/next-sibling links instead of pointers.
// This keeps the tree acyclic by construction and makes subtree copy a
// simple reachable-index walk (see design note "Trees as sibling-chained
// child pointers").
//
// Every non-root node has exactly one parent; weight(n) always equals the
// number of leaves under n and degree(n) always equals n's live child
// count once Update has run. Mutating operations (RemoveLeaf, Prune) keep
// these fields consistent as they go rather than requiring a separate
// re-traversal, except where noted.
package tree
