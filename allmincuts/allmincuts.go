package allmincuts

// Mark runs the Picard–Queyranne extraction for every witness pair and
// returns the set of edge IDs that lie in some minimum cut. Callers
// typically hide exactly these edges on the original graph (spec §4.F:
// "after all witnesses are processed, hide every marked edge").
func Mark(nodes []int, edges []Edge, witnesses []Witness) (map[int]bool, error) {
	present := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		present[n] = true
	}

	marked := make(map[int]bool)
	for _, w := range witnesses {
		if !present[w.S] || !present[w.T] {
			return nil, ErrUnknownWitness
		}

		resid, err := buildResidual(nodes, edges)
		if err != nil {
			return nil, err
		}
		fordFulkerson(resid, w.S, w.T)

		sccs := stronglyConnectedComponents(nodes, resid)
		sccOf := make(map[int]int, len(nodes))
		for i, comp := range sccs {
			for _, v := range comp {
				sccOf[v] = i
			}
		}

		for _, e := range edges {
			if e.U == e.V {
				continue
			}
			if sccOf[e.U] != sccOf[e.V] {
				marked[e.ID] = true
			}
		}
	}
	return marked, nil
}
