package render

import (
	"fmt"
	"io"

	"github.com/mincut-supertree/supertree/cluster"
	"github.com/mincut-supertree/supertree/label"
)

// DOT writes g as a Graphviz DOT undirected graph (spec §6's "-d"), using
// the same node-naming rule as GML (numeric id, or leaf labels under -l).
func DOT(w io.Writer, g *cluster.Graph, tab *label.Table, useLabels bool) error {
	if _, err := fmt.Fprintln(w, "graph ST {"); err != nil {
		return err
	}
	for _, id := range g.LiveNodes() {
		if _, err := fmt.Fprintf(w, "\t%d [label=%q];\n", id, nodeName(g, tab, id, useLabels)); err != nil {
			return err
		}
	}
	for _, e := range g.LiveEdges() {
		if _, err := fmt.Fprintf(w, "\t%d -- %d [weight=%d, label=\"%d\"];\n", e.U, e.V, e.Weight, e.Weight); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
