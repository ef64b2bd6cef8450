package cluster

// LiveNodes returns every non-hidden node id in insertion order.
func (g *Graph) LiveNodes() []NodeID {
	out := make([]NodeID, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		if !g.hiddenN[id] {
			out = append(out, id)
		}
	}
	return out
}

// LiveEdges returns every non-hidden edge in insertion order, with
// endpoints that also each pass through EdgeBetween's adjacency (an edge
// re-endpointed by Merge keeps its original insertion slot).
func (g *Graph) LiveEdges() []Edge {
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		e := g.edges[id]
		if e.hidden {
			continue
		}
		out = append(out, Edge{ID: id, U: e.u, V: e.v, Weight: e.weight, Freq: e.freq})
	}
	return out
}

// IncidentEdges returns every live edge touching id, in insertion order.
func (g *Graph) IncidentEdges(id NodeID) []Edge {
	out := make([]Edge, 0, len(g.adj[id]))
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		if e.hidden || (e.u != id && e.v != id) {
			continue
		}
		out = append(out, Edge{ID: eid, U: e.u, V: e.v, Weight: e.weight, Freq: e.freq})
	}
	return out
}

// Other returns the endpoint of e that is not id; e must be incident to id.
func (e Edge) Other(id NodeID) NodeID {
	if e.U == id {
		return e.V
	}
	return e.U
}

// Degree returns the number of live incident edges to id (parallel edges
// already folded by AddEdge/Merge, so this is also the live neighbor
// count).
func (g *Graph) Degree(id NodeID) int {
	n := 0
	for _, eid := range g.adj[id] {
		if !g.edges[eid].hidden {
			n++
		}
	}
	return n
}
