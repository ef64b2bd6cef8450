package allmincuts

// buildResidual doubles each undirected edge into two opposed directed
// arcs of capacity equal to the undirected weight (spec §4.F step 1).
func buildResidual(nodes []int, edges []Edge) (map[int]map[int]int64, error) {
	resid := make(map[int]map[int]int64, len(nodes))
	for _, n := range nodes {
		resid[n] = make(map[int]int64)
	}
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		if e.Weight < 0 {
			return nil, EdgeError{From: e.U, To: e.V, Weight: e.Weight}
		}
		resid[e.U][e.V] += e.Weight
		resid[e.V][e.U] += e.Weight
	}
	return resid, nil
}

// fordFulkerson saturates resid with a maximum flow from s to t via
// repeated DFS augmenting paths, mutating resid into the residual graph
// in place (spec §4.F step 2).
func fordFulkerson(resid map[int]map[int]int64, s, t int) {
	for {
		visited := make(map[int]bool, len(resid))
		path, bottleneck := dfsFindPath(resid, s, t, visited, -1)
		if len(path) == 0 {
			return
		}
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			resid[u][v] -= bottleneck
			resid[v][u] += bottleneck
		}
	}
}

// dfsFindPath looks for any s->t path of strictly positive residual
// capacity, returning it with its bottleneck. available < 0 means
// unconstrained so far.
func dfsFindPath(resid map[int]map[int]int64, u, sink int, visited map[int]bool, available int64) ([]int, int64) {
	if u == sink {
		return []int{sink}, available
	}
	visited[u] = true
	for v, capUV := range resid[u] {
		if visited[v] || capUV <= 0 {
			continue
		}
		b := capUV
		if available >= 0 && available < b {
			b = available
		}
		path, flow := dfsFindPath(resid, v, sink, visited, b)
		if len(path) > 0 {
			return append([]int{u}, path...), flow
		}
	}
	return nil, 0
}
