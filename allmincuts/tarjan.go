package allmincuts

// tarjanFrame is one explicit call-stack frame for the iterative
// strongconnect recursion, per spec §9's "Tarjan's algorithm with
// explicit stack of unfinished vertices" design note.
type tarjanFrame struct {
	v        int
	children []int
	ci       int
}

// stronglyConnectedComponents computes the SCCs of the directed graph
// whose arcs are every (u,v) with resid[u][v] > 0 — the residual graph
// after hiding non-positive arcs (spec §4.F step 3).
func stronglyConnectedComponents(nodes []int, resid map[int]map[int]int64) [][]int {
	indices := make(map[int]int, len(nodes))
	lowlink := make(map[int]int, len(nodes))
	onStack := make(map[int]bool, len(nodes))
	var tstack []int
	var sccs [][]int
	next := 0

	outNeighbors := func(v int) []int {
		var out []int
		for w, r := range resid[v] {
			if r > 0 {
				out = append(out, w)
			}
		}
		return out
	}

	for _, root := range nodes {
		if _, ok := indices[root]; ok {
			continue
		}

		var work []tarjanFrame
		indices[root] = next
		lowlink[root] = next
		next++
		onStack[root] = true
		tstack = append(tstack, root)
		work = append(work, tarjanFrame{v: root, children: outNeighbors(root)})

		for len(work) > 0 {
			top := &work[len(work)-1]
			if top.ci < len(top.children) {
				w := top.children[top.ci]
				top.ci++
				if _, ok := indices[w]; !ok {
					indices[w] = next
					lowlink[w] = next
					next++
					onStack[w] = true
					tstack = append(tstack, w)
					work = append(work, tarjanFrame{v: w, children: outNeighbors(w)})
				} else if onStack[w] {
					if indices[w] < lowlink[top.v] {
						lowlink[top.v] = indices[w]
					}
				}
				continue
			}

			v := top.v
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if lowlink[v] < lowlink[parent.v] {
					lowlink[parent.v] = lowlink[v]
				}
			}
			if lowlink[v] == indices[v] {
				var comp []int
				for {
					w := tstack[len(tstack)-1]
					tstack = tstack[:len(tstack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				sccs = append(sccs, comp)
			}
		}
	}
	return sccs
}
