package mrp

import (
	"fmt"
	"io"

	"github.com/mincut-supertree/supertree/label"
	"github.com/mincut-supertree/supertree/tree"
)

// outgroupState is the fixed character state written for the synthetic
// mrp_outgroup taxon on every character — it never belongs to any cluster.
const outgroupState = '0'

// charset records the 1-based, inclusive character-column range one source
// tree contributed to the matrix (the "begin sets;" block).
type charset struct {
	treeName   string
	start, end int
}

// Matrix is the binary character matrix built by Build: one row per
// internal node across every source tree (a "character"), one column per
// distinct leaf label plus the synthetic outgroup.
type Matrix struct {
	taxa []string // leaf labels, in label.Table index order
	rows [][]byte // rows[i][j]: state of taxon j (taxa index) for character i, '0'/'1'/'?'

	charsets []charset
}

// Build encodes trees against tab's global label space into an MRP matrix
// (spec §6, NEXUS "-m" output). tab must already have every leaf label
// used by trees interned (BuildLabelClusters is invoked here to populate
// each tree's clusters against tab).
//
// For every internal node n of every tree (root included, preorder,
// matching original_source/supertree.cpp's WriteMRP), one character row is
// produced: '0' for every taxon inside the tree's root cluster but outside
// n's cluster, '1' for every taxon inside n's cluster, '?' for every taxon
// the tree says nothing about (outside its root cluster entirely).
func Build(trees []*tree.Tree, tab *label.Table) (*Matrix, error) {
	if len(trees) == 0 {
		return nil, ErrNoTrees
	}

	m := &Matrix{taxa: tab.Labels()}
	ntax := len(m.taxa)

	for i, t := range trees {
		if t.Empty() {
			continue
		}
		t.BuildLabelClusters(tab)

		name := t.Name
		if name == "" {
			name = fmt.Sprintf("tree%d", i+1)
		}

		start := len(m.rows) + 1
		root := t.Root()
		rootSet := t.Cluster(root)
		inRoot := make([]bool, ntax+1) // 1-based index into taxa

		for _, idx := range rootSet {
			inRoot[idx] = true
		}

		preorderInternal(t, root, func(n int) {
			row := make([]byte, ntax)
			for idx := 1; idx <= ntax; idx++ {
				if inRoot[idx] {
					row[idx-1] = '0'
				} else {
					row[idx-1] = '?'
				}
			}
			for _, idx := range t.Cluster(n) {
				row[idx-1] = '1'
			}
			m.rows = append(m.rows, row)
		})

		m.charsets = append(m.charsets, charset{treeName: name, start: start, end: len(m.rows)})
	}

	return m, nil
}

// preorderInternal visits every non-leaf node reachable from n, n included,
// root first then children left to right — the same order
// original_source/supertree.cpp's NodeIterator walks a tree in.
func preorderInternal(t *tree.Tree, n int, visit func(int)) {
	if !t.IsLeaf(n) {
		visit(n)
	}
	for _, c := range t.Children(n) {
		preorderInternal(t, c, visit)
	}
}

// WriteNexus writes m as a NEXUS file with taxa, characters and sets
// blocks (spec §6): mrp_outgroup first among the taxa, a transposed
// "nolabels" character matrix with the outgroup's fixed state prefixed to
// every row, and a charset per source tree naming its contributed column
// range.
func (m *Matrix) WriteNexus(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "#NEXUS"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "[generated by the min-cut supertree engine]"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "begin taxa;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tdimensions ntax=%d;\n", len(m.taxa)+1); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\ttaxlabels"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\t\tmrp_outgroup"); err != nil {
		return err
	}
	for _, lbl := range m.taxa {
		if _, err := fmt.Fprintf(w, "\t\t'%s'\n", lbl); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "\t\t;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "end;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "begin characters;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tdimensions nchar=%d;\n", len(m.rows)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\tformat symbols=\"01\" missing=? transpose nolabels;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\tmatrix"); err != nil {
		return err
	}
	for _, cs := range m.charsets {
		if _, err := fmt.Fprintf(w, "[%s]\n", cs.treeName); err != nil {
			return err
		}
		for i := cs.start; i <= cs.end; i++ {
			if _, err := fmt.Fprintf(w, "%c%s\n", outgroupState, m.rows[i-1]); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w, "\t;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "end;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "begin sets;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\t[charsets corresponding to binary codes for each tree]"); err != nil {
		return err
	}
	for _, cs := range m.charsets {
		if _, err := fmt.Fprintf(w, "\tcharset %s = %d-%d;\n", cs.treeName, cs.start, cs.end); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "end;")
	return err
}
