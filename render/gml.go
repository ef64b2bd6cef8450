package render

import (
	"fmt"
	"io"

	"github.com/mincut-supertree/supertree/cluster"
	"github.com/mincut-supertree/supertree/label"
)

// GML writes g as a GML (Graph Modelling Language) graph, the format spec
// §6's "-g" names for ST/ST-Eₘₐₓ dumps. Node ids are g's own NodeIDs;
// useLabels swaps the "label" attribute from the numeric id to the
// underlying leaf labels (spec §6 "-l").
func GML(w io.Writer, g *cluster.Graph, tab *label.Table, useLabels bool) error {
	if _, err := fmt.Fprintln(w, "graph ["); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  directed 0"); err != nil {
		return err
	}
	for _, id := range g.LiveNodes() {
		if _, err := fmt.Fprintf(w, "  node [\n    id %d\n    label %q\n  ]\n", id, nodeName(g, tab, id, useLabels)); err != nil {
			return err
		}
	}
	for _, e := range g.LiveEdges() {
		if _, err := fmt.Fprintf(w, "  edge [\n    source %d\n    target %d\n    weight %d\n  ]\n", e.U, e.V, e.Weight); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "]")
	return err
}
