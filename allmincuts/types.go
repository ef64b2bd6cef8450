package allmincuts

// Edge mirrors mincut.Edge: an undirected weighted edge identified by an
// opaque ID the caller can map back to its own graph (e.g. a
// cluster.Graph edge id).
type Edge struct {
	ID     int
	U, V   int
	Weight int64
}

// Witness is an (s, t) pair from the min-cut engine to probe for the set
// of edges crossing some minimum cut realized at that pair.
type Witness struct {
	S, T int
}
