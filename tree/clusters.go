package tree

import "github.com/mincut-supertree/supertree/label"

// BuildLeafClusters populates every node's cluster with the set of this
// tree's own leaf-number indices (1..n, n = this tree's leaf count)
// descending from it — the "leaf-number cluster" flavor of spec §3.
// Complexity: O(n) post-order traversal.
func (t *Tree) BuildLeafClusters() {
	if t.Empty() {
		return
	}
	var walk func(n int)
	walk = func(n int) {
		children := t.Children(n)
		if len(children) == 0 {
			t.nodes[n].cluster = []int{t.nodes[n].leafNumber + 1} // 1-indexed
			return
		}
		var set []int
		for _, c := range children {
			walk(c)
			set = append(set, t.nodes[c].cluster...)
		}
		t.nodes[n].cluster = set
	}
	walk(t.Root())
}

// BuildLabelClusters populates every node's cluster with the set of global
// label-table indices (interning any leaf label not yet seen) descending
// from it — the "label-number cluster" flavor of spec §3, used once
// multiple trees interact.
// Complexity: O(n).
func (t *Tree) BuildLabelClusters(tab *label.Table) {
	if t.Empty() {
		return
	}
	var walk func(n int)
	walk = func(n int) {
		children := t.Children(n)
		if len(children) == 0 {
			t.nodes[n].cluster = []int{tab.Intern(t.nodes[n].label)}
			return
		}
		var set []int
		for _, c := range children {
			walk(c)
			set = append(set, t.nodes[c].cluster...)
		}
		t.nodes[n].cluster = set
	}
	walk(t.Root())
}
