package contract

import "github.com/mincut-supertree/supertree/cluster"

// candidate is a snapshot of a phase-1 edge taken once at collection time,
// since Merge re-endpoints or hides the live cluster.Edge as the phase
// proceeds.
type candidate struct {
	id   cluster.EdgeID
	u, v cluster.NodeID
}

// phase1 contracts every ST edge with weight == wsum (the unanimous-
// nesting edges of Semple & Steel 2000), replaying each merge onto co and
// fan. Returns the number of merges performed.
func phase1(st, co, fan *cluster.Graph, wsum int64) (int, error) {
	var queue []candidate
	for _, e := range st.LiveEdges() {
		if e.Weight == wsum {
			queue = append(queue, candidate{id: e.ID, u: e.U, v: e.V})
		}
	}

	removed := make(map[cluster.EdgeID]bool, len(queue))
	merges := 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if removed[c.id] {
			continue
		}
		if err := mergeAll(st, co, fan, c.u, c.v); err != nil {
			return merges, err
		}
		merges++
		removed[c.id] = true
		for _, other := range queue {
			if other.u == c.v || other.v == c.v {
				removed[other.id] = true
			}
		}
	}
	return merges, nil
}

// mergeAll replays Merge(s, t) on all three graphs that share this
// recursion frame's node-id space.
func mergeAll(st, co, fan *cluster.Graph, s, t cluster.NodeID) error {
	if err := st.Merge(s, t); err != nil {
		return err
	}
	if co.HasNode(s) && co.HasNode(t) {
		if err := co.Merge(s, t); err != nil {
			return err
		}
	}
	if fan.HasNode(s) && fan.HasNode(t) {
		if err := fan.Merge(s, t); err != nil {
			return err
		}
	}
	return nil
}
