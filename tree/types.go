package tree

// noIndex marks an absent parent/child/sibling link or an unset leaf number.
const noIndex = -1

// node is one arena slot. Children are a singly-linked list threaded through
// firstChild/nextSibling so that subtree copy and pruning are plain index
// walks with no pointer aliasing to worry about.
type node struct {
	parent      int
	firstChild  int
	nextSibling int

	label      string
	isLeaf     bool
	leafNumber int // stable left-to-right order among leaves; noIndex for internals

	weight int // number of leaves in this node's subtree
	degree int // live child count

	hasEdgeLen bool
	edgeLen    float64

	// cluster holds the set of leaf indices under this node once a Build*
	// pass has run. The two flavors (leaf-number vs label-number) are never
	// mixed within one Tree: whichever BuildXClusters ran last wins.
	cluster []int
}

// Tree is a rooted, leaf-labeled tree stored as an arena of nodes addressed
// by integer index. Index 0 is always the root once any node exists.
type Tree struct {
	nodes []node

	// Weight is the source-tree weight (spec §6, "[&W <number>]"); defaults
	// to 1 when the input carries no annotation or -w is not given.
	Weight float64

	// Unrooted flags a root of degree > 2 (spec §3, "Tree (rooted)") or an
	// explicit [&U] hint; the structure is still stored rooted. NEXUS
	// emission does not read it: render.NexusTrees marks every tree [&R].
	Unrooted bool

	// Name is an optional tree name as carried by a NEXUS "tree <name> = ...".
	Name string
}

// New returns an empty Tree (no nodes). Use NewLeaf/NewInternal to grow it,
// or Parse to build one from Newick text.
func New() *Tree {
	return &Tree{Weight: 1}
}

// Empty reports whether the tree has no nodes at all.
func (t *Tree) Empty() bool { return len(t.nodes) == 0 }

// NumNodes returns the number of nodes (leaves + internals) in the arena.
func (t *Tree) NumNodes() int { return len(t.nodes) }

// Root returns the index of the root node, or noIndex if the tree is empty.
func (t *Tree) Root() int {
	if t.Empty() {
		return noIndex
	}
	return 0
}

func (t *Tree) valid(n int) bool { return n >= 0 && n < len(t.nodes) }

// IsLeaf reports whether node n is a leaf.
func (t *Tree) IsLeaf(n int) bool { return t.nodes[n].isLeaf }

// Label returns n's label (always non-empty for a leaf; may be empty for
// an unlabeled internal node).
func (t *Tree) Label(n int) string { return t.nodes[n].label }

// SetLabel sets n's label in place (used when the parser finds a trailing
// internal-node name/weight token after a closing parenthesis).
func (t *Tree) SetLabel(n int, lbl string) { t.nodes[n].label = lbl }

// Parent returns the index of n's parent, or noIndex for the root.
func (t *Tree) Parent(n int) int { return t.nodes[n].parent }

// LeafCount returns the number of leaves under n (reads like the spec's
// "weight(n) = number of leaves").
func (t *Tree) LeafCount(n int) int { return t.nodes[n].weight }

// Degree returns n's live child count.
func (t *Tree) Degree(n int) int { return t.nodes[n].degree }

// LeafNumber returns n's stable leaf order, or noIndex if n is internal.
func (t *Tree) LeafNumber(n int) int { return t.nodes[n].leafNumber }

// EdgeLength returns n's edge length to its parent and whether one was set.
func (t *Tree) EdgeLength(n int) (float64, bool) { return t.nodes[n].edgeLen, t.nodes[n].hasEdgeLen }

// SetEdgeLength records n's edge length to its parent. Negative lengths
// clamp to zero per spec §4.A.
func (t *Tree) SetEdgeLength(n int, v float64) {
	if v < 0 {
		v = 0
	}
	t.nodes[n].edgeLen = v
	t.nodes[n].hasEdgeLen = true
}

// Children returns n's children in stable left-to-right order.
func (t *Tree) Children(n int) []int {
	var out []int
	for c := t.nodes[n].firstChild; c != noIndex; c = t.nodes[c].nextSibling {
		out = append(out, c)
	}
	return out
}

// Cluster returns the leaf-index set computed for n by the most recent
// BuildLeafClusters/BuildLabelClusters pass. Callers must not mutate the
// returned slice.
func (t *Tree) Cluster(n int) []int { return t.nodes[n].cluster }

// newNode appends a fresh node to the arena and returns its index.
func (t *Tree) newNode(parent int) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{parent: parent, firstChild: noIndex, nextSibling: noIndex, leafNumber: noIndex})
	return idx
}

// appendChild links child as the new last child of parent.
func (t *Tree) appendChild(parent, child int) {
	t.nodes[child].parent = parent
	if t.nodes[parent].firstChild == noIndex {
		t.nodes[parent].firstChild = child
		return
	}
	c := t.nodes[parent].firstChild
	for t.nodes[c].nextSibling != noIndex {
		c = t.nodes[c].nextSibling
	}
	t.nodes[c].nextSibling = child
}

// Leaves returns the index of every leaf reachable from the root, in
// left-to-right order. Leaves unlinked by RemoveLeaf/Prune stay in the
// arena but are not listed.
func (t *Tree) Leaves() []int {
	if t.Empty() {
		return nil
	}
	var out []int
	var walk func(n int)
	walk = func(n int) {
		if t.nodes[n].isLeaf {
			out = append(out, n)
			return
		}
		for c := t.nodes[n].firstChild; c != noIndex; c = t.nodes[c].nextSibling {
			walk(c)
		}
	}
	walk(t.Root())
	return out
}

// LabelSet returns the set of leaf labels in this tree.
func (t *Tree) LabelSet() []string {
	leaves := t.Leaves()
	out := make([]string, len(leaves))
	for i, n := range leaves {
		out[i] = t.nodes[n].label
	}
	return out
}
