package mincut

// Edge is one undirected weighted edge in the input graph. ID is opaque
// to this package and only round-trips through the caller, should it want
// to map a cut back to originating edges (Run itself never returns IDs,
// only node-level witness pairs, per spec §4.E).
type Edge struct {
	ID     int
	U, V   int
	Weight int64
}

// Witness is an ordered pair (s, t): the last two nodes added during some
// minimum-cut phase, realizing that phase's cut value.
type Witness struct {
	S, T int
}
