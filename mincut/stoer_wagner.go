package mincut

// Run computes the global minimum cut of the undirected weighted
// multigraph given by nodes and edges, returning the cut value and every
// witness pair (s, t) realizing it. If the graph is disconnected, it
// returns (0, nil, nil) without running the phase loop.
func Run(nodes []int, edges []Edge) (int64, []Witness, error) {
	if len(nodes) == 0 {
		return 0, nil, ErrNoNodes
	}
	if len(nodes) == 1 {
		return 0, nil, nil
	}

	adj := buildAdjacency(edges)
	if !connected(nodes, adj) {
		return 0, nil, nil
	}

	active := make([]int, len(nodes))
	copy(active, nodes)

	var bestCut int64 = -1
	var witnesses []Witness

	for len(active) > 1 {
		s, t, cutOfPhase := minimumCutPhase(active, adj)
		switch {
		case bestCut < 0 || cutOfPhase < bestCut:
			bestCut = cutOfPhase
			witnesses = []Witness{{S: s, T: t}}
		case cutOfPhase == bestCut:
			witnesses = append(witnesses, Witness{S: s, T: t})
		}
		mergeInto(adj, s, t)
		active = removeNode(active, t)
	}
	if bestCut < 0 {
		bestCut = 0
	}
	return bestCut, witnesses, nil
}

func buildAdjacency(edges []Edge) map[int]map[int]int64 {
	adj := make(map[int]map[int]int64)
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		ensure(adj, e.U)
		ensure(adj, e.V)
		adj[e.U][e.V] += e.Weight
		adj[e.V][e.U] += e.Weight
	}
	return adj
}

func ensure(adj map[int]map[int]int64, n int) {
	if adj[n] == nil {
		adj[n] = make(map[int]int64)
	}
}

func connected(nodes []int, adj map[int]map[int]int64) bool {
	if len(nodes) == 0 {
		return true
	}
	visited := map[int]bool{nodes[0]: true}
	stack := []int{nodes[0]}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for nb := range adj[n] {
			if !visited[nb] {
				visited[nb] = true
				stack = append(stack, nb)
			}
		}
	}
	return len(visited) == len(nodes)
}

// minimumCutPhase runs one maximum-adjacency-search phase, returning the
// last two nodes added (s before t) and the cut-of-the-phase value (the
// tightness of the last node added).
func minimumCutPhase(active []int, adj map[int]map[int]int64) (s, t int, cutOfPhase int64) {
	inA := make(map[int]bool, len(active))
	tightness := make(map[int]int64, len(active))
	start := active[0]
	inA[start] = true
	for nb, w := range adj[start] {
		tightness[nb] += w
	}

	order := []int{start}
	for len(order) < len(active) {
		best, bestVal := -1, int64(-1)
		for _, n := range active {
			if inA[n] {
				continue
			}
			if bestVal < 0 || tightness[n] > bestVal {
				best, bestVal = n, tightness[n]
			}
		}
		inA[best] = true
		order = append(order, best)
		if len(order) == len(active) {
			cutOfPhase = bestVal
		}
		for nb, w := range adj[best] {
			if !inA[nb] {
				tightness[nb] += w
			}
		}
	}

	t = order[len(order)-1]
	s = order[len(order)-2]
	return s, t, cutOfPhase
}

// mergeInto folds t into s: every t-edge is re-endpointed onto s, summing
// weight with any existing s-neighbor edge; the direct s-t edge is
// dropped. t is then removed from the adjacency map entirely.
func mergeInto(adj map[int]map[int]int64, s, t int) {
	for nb, w := range adj[t] {
		if nb == s {
			continue
		}
		ensure(adj, s)
		adj[s][nb] += w
		adj[nb][s] += w
		delete(adj[nb], t)
	}
	delete(adj[s], t)
	delete(adj, t)
}

func removeNode(active []int, n int) []int {
	out := active[:0]
	for _, x := range active {
		if x != n {
			out = append(out, x)
		}
	}
	return out
}
