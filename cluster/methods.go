package cluster

// AddNode registers id as a node whose node-set is initially {id}. A
// second call with the same id is a no-op, matching the idempotent
// add-node used while seeding ST/CO/fan from every leaf label.
func (g *Graph) AddNode(id NodeID) {
	if g.present[id] {
		return
	}
	g.present[id] = true
	g.nodeSet[id] = []int{id}
	g.nodeOrder = append(g.nodeOrder, id)
}

// HasNode reports whether id was ever added and is still live (not
// absorbed by a Merge).
func (g *Graph) HasNode(id NodeID) bool {
	return g.present[id] && !g.hiddenN[id]
}

// NodeSet returns a copy of the original leaf indices currently
// represented by id. Querying a merged-away (hidden) node still returns
// its last node-set, since callers may read it right after the Merge that
// absorbed it.
func (g *Graph) NodeSet(id NodeID) []int {
	set := g.nodeSet[id]
	out := make([]int, len(set))
	copy(out, set)
	return out
}

// AddEdge adds weight w between a and b, or increments an existing edge's
// weight and frequency by w and 1 respectively. A self-loop (a == b) and a
// reference to a node never added via AddNode are silent no-ops.
func (g *Graph) AddEdge(a, b NodeID, w int64) {
	if a == b || !g.present[a] || !g.present[b] {
		return
	}
	if nbrs, ok := g.adj[a]; ok {
		if eid, ok := nbrs[b]; ok {
			g.edges[eid].weight += w
			g.edges[eid].freq++
			return
		}
	}
	eid := len(g.edges)
	g.edges = append(g.edges, edge{u: a, v: b, weight: w, freq: 1})
	g.link(a, b, eid)
	g.edgeOrder = append(g.edgeOrder, eid)
}

func (g *Graph) link(a, b NodeID, eid EdgeID) {
	if g.adj[a] == nil {
		g.adj[a] = make(map[NodeID]EdgeID)
	}
	if g.adj[b] == nil {
		g.adj[b] = make(map[NodeID]EdgeID)
	}
	g.adj[a][b] = eid
	g.adj[b][a] = eid
}

func (g *Graph) unlink(a, b NodeID) {
	delete(g.adj[a], b)
	delete(g.adj[b], a)
}

// Merge folds t into s: s's node-set absorbs t's, every edge incident to t
// is re-endpointed onto s (summing weight and frequency into any
// already-existing s-u edge rather than creating a parallel one), any
// direct s-t edge is dropped, and t is hidden. t's node-set and edge
// history remain queryable for bookkeeping but t no longer appears in
// LiveNodes or adjacency.
func (g *Graph) Merge(s, t NodeID) error {
	if s == t {
		return ErrSelfMerge
	}
	if !g.HasNode(s) || !g.HasNode(t) {
		return ErrUnknownNode
	}

	g.nodeSet[s] = append(g.nodeSet[s], g.nodeSet[t]...)

	neighbors := make([]NodeID, 0, len(g.adj[t]))
	for u := range g.adj[t] {
		neighbors = append(neighbors, u)
	}
	for _, u := range neighbors {
		eid := g.adj[t][u]
		g.unlink(t, u)
		if u == s {
			g.edges[eid].hidden = true
			continue
		}
		if existing, ok := g.adj[s][u]; ok {
			g.edges[existing].weight += g.edges[eid].weight
			g.edges[existing].freq += g.edges[eid].freq
			g.edges[eid].hidden = true
			continue
		}
		g.edges[eid].u, g.edges[eid].v = s, u
		g.link(s, u, eid)
	}
	delete(g.adj, t)
	g.hiddenN[t] = true
	return nil
}

// HideEdge removes id from iteration without discarding it; RestoreEdge
// reverses that. Hiding an edge already hidden, or restoring a live one,
// is a no-op.
func (g *Graph) HideEdge(id EdgeID) error {
	if id < 0 || id >= len(g.edges) {
		return ErrUnknownEdge
	}
	g.edges[id].hidden = true
	return nil
}

// RestoreEdge reverses HideEdge.
func (g *Graph) RestoreEdge(id EdgeID) error {
	if id < 0 || id >= len(g.edges) {
		return ErrUnknownEdge
	}
	g.edges[id].hidden = false
	return nil
}

// EdgeAt returns a read-only view of edge id, including hidden edges.
func (g *Graph) EdgeAt(id EdgeID) (Edge, error) {
	if id < 0 || id >= len(g.edges) {
		return Edge{}, ErrUnknownEdge
	}
	e := g.edges[id]
	return Edge{ID: id, U: e.u, V: e.v, Weight: e.weight, Freq: e.freq, IsHidden: e.hidden}, nil
}

// EdgeBetween returns the (possibly hidden) edge joining a and b, if any.
func (g *Graph) EdgeBetween(a, b NodeID) (Edge, bool) {
	nbrs, ok := g.adj[a]
	if !ok {
		return Edge{}, false
	}
	eid, ok := nbrs[b]
	if !ok {
		return Edge{}, false
	}
	e := g.edges[eid]
	return Edge{ID: eid, U: e.u, V: e.v, Weight: e.weight, Freq: e.freq, IsHidden: e.hidden}, true
}
