package contract

import "github.com/mincut-supertree/supertree/cluster"

type edgeColor int

const (
	uncontradicted edgeColor = iota
	contradicted
	adjacentToContradicted
)

// phase2 runs the ROD1 extension: color every still-live ST edge
// uncontradicted or contradicted from CO/fan frequencies, spread
// "adjacent-to-contradicted" across triangles touching a contradicted
// edge, hide everything but the uncontradicted edges, collapse any
// resulting components, then restore what's left hideable. Returns
// whether the graph was already disconnected using only the contradicted
// (not adjacent-to-contradicted) edges as the cut — the §9 "h" condition.
func phase2(st, co, fan *cluster.Graph) (contradictedOnlyDisconnected bool, err error) {
	live := st.LiveEdges()
	color := make(map[cluster.EdgeID]edgeColor, len(live))
	for _, e := range live {
		fCo := int64(0)
		if coEdge, ok := co.EdgeBetween(e.U, e.V); ok {
			fCo = coEdge.Freq
		}
		fFan := int64(0)
		if fanEdge, ok := fan.EdgeBetween(e.U, e.V); ok {
			fFan = fanEdge.Freq
		}
		if fCo-e.Freq-fFan == 0 {
			color[e.ID] = uncontradicted
		} else {
			color[e.ID] = contradicted
		}
	}

	contradictedOnlyDisconnected = probeContradictedOnlyDisconnection(st, color)

	spreadAdjacentToContradicted(st, color)

	var toHide []cluster.EdgeID
	for id, c := range color {
		if c != uncontradicted {
			toHide = append(toHide, id)
		}
	}
	for _, id := range toHide {
		_ = st.HideEdge(id)
	}

	if !st.IsConnected() {
		for _, comp := range st.Components() {
			if len(comp) <= 1 {
				continue
			}
			rep := comp[0]
			for _, other := range comp[1:] {
				if err := mergeAll(st, co, fan, rep, other); err != nil {
					return contradictedOnlyDisconnected, err
				}
			}
		}
	}

	restoreSurviving(st, toHide)
	return contradictedOnlyDisconnected, nil
}

// probeContradictedOnlyDisconnection checks connectivity with only the
// strictly-contradicted edges hidden, then undoes the probe.
func probeContradictedOnlyDisconnection(st *cluster.Graph, color map[cluster.EdgeID]edgeColor) bool {
	var probed []cluster.EdgeID
	for id, c := range color {
		if c == contradicted {
			_ = st.HideEdge(id)
			probed = append(probed, id)
		}
	}
	disconnected := !st.IsConnected()
	for _, id := range probed {
		_ = st.RestoreEdge(id)
	}
	return disconnected
}

// spreadAdjacentToContradicted recolors, for every contradicted edge
// (u,v), the two edges of any triangle it forms with a common neighbor w.
func spreadAdjacentToContradicted(st *cluster.Graph, color map[cluster.EdgeID]edgeColor) {
	contradictedEdges := make([]cluster.Edge, 0)
	for _, e := range st.LiveEdges() {
		if color[e.ID] == contradicted {
			contradictedEdges = append(contradictedEdges, e)
		}
	}
	for _, e := range contradictedEdges {
		u, v := e.U, e.V
		for _, ue := range st.IncidentEdges(u) {
			w := ue.Other(u)
			if w == v {
				continue
			}
			ve, ok := st.EdgeBetween(v, w)
			if !ok {
				continue
			}
			if color[ue.ID] == uncontradicted {
				color[ue.ID] = adjacentToContradicted
			}
			if color[ve.ID] == uncontradicted {
				color[ve.ID] = adjacentToContradicted
			}
		}
	}
}

// restoreSurviving un-hides every edge in toHide that was not dropped as a
// loop or folded into a parallel edge by the component-collapsing merges.
func restoreSurviving(st *cluster.Graph, toHide []cluster.EdgeID) {
	for _, id := range toHide {
		e, err := st.EdgeAt(id)
		if err != nil || e.U == e.V {
			continue
		}
		live, ok := st.EdgeBetween(e.U, e.V)
		if !ok || live.ID != id {
			continue
		}
		_ = st.RestoreEdge(id)
	}
}
