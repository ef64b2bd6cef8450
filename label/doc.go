// Package label maintains the global leaf-label table shared by every tree
// in a supertree run.
//
// A Label is an opaque string identifying a leaf. Within a single run every
// distinct label observed across all source trees is assigned a stable
// integer index 1..L, in first-appearance order. Indices back cluster sets
// (slices of indices); labels are used at the I/O boundary.
//
// Table is not safe for concurrent mutation; supertree.Run creates one
// table per run and its recursion frames only read it.
package label
