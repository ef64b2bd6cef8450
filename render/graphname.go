package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mincut-supertree/supertree/cluster"
	"github.com/mincut-supertree/supertree/label"
)

// nodeName renders a cluster.Graph node id for a GML/DOT dump: its member
// leaf labels joined with "_" when useLabels is set (spec §6 "-l"),
// otherwise the bare numeric node id.
func nodeName(g *cluster.Graph, tab *label.Table, id cluster.NodeID, useLabels bool) string {
	if !useLabels {
		return strconv.Itoa(id)
	}
	members := g.NodeSet(id)
	labels := make([]string, 0, len(members))
	for _, idx := range members {
		lbl, err := tab.Label(idx)
		if err != nil {
			lbl = strconv.Itoa(idx)
		}
		labels = append(labels, lbl)
	}
	sort.Strings(labels)
	return strings.Join(labels, "_")
}
