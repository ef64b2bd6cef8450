package tree

// Update recomputes leaf-number, weight, and degree for every node in
// post-order, and refreshes leaf-labeled-ness from the current child links.
// Call it after any structural mutation that didn't keep the fields current
// inline (parsing calls it once at the end; RemoveLeaf/Prune maintain weight
// and degree incrementally but leave leaf numbers as they were, so call it
// before relying on leaf numbers after a removal; it is always safe to call).
//
// Complexity: O(n) in the number of nodes.
func (t *Tree) Update() {
	if t.Empty() {
		return
	}
	var nextLeaf int
	var walk func(n int) int // returns n's weight (leaf count)
	walk = func(n int) int {
		children := t.Children(n)
		t.nodes[n].degree = len(children)
		if len(children) == 0 {
			t.nodes[n].isLeaf = true
			t.nodes[n].leafNumber = nextLeaf
			nextLeaf++
			t.nodes[n].weight = 1
			return 1
		}
		t.nodes[n].isLeaf = false
		t.nodes[n].leafNumber = noIndex
		w := 0
		for _, c := range children {
			w += walk(c)
		}
		t.nodes[n].weight = w
		return w
	}
	walk(t.Root())
}
