package supertree

import "github.com/mincut-supertree/supertree/tree"

// Cursor grows a Tree in pre-order through three primitives (spec §3,
// "Supertree under construction"): attach-child, attach-right-sibling,
// and append-label. Current tracks the node representing whichever
// recursion frame is active; Push/Pop bracket a recursive descent so the
// callee sees its own frame node as Current and the caller gets its own
// back automatically on return — "push/pop mirrored by the call stack
// itself" (spec §9).
type Cursor struct {
	Tree  *tree.Tree
	cur   int
	stack []int
}

// NewCursor returns a cursor over a fresh output tree with a single,
// unlabeled root node — the frame node of the top-level invocation.
func NewCursor() *Cursor {
	t := tree.New()
	root := t.NewInternal()
	return &Cursor{Tree: t, cur: root}
}

// Current returns the node representing the active recursion frame.
func (c *Cursor) Current() int { return c.cur }

// Push saves the active frame node and moves Current to at, for the
// duration of a recursive call.
func (c *Cursor) Push(at int) {
	c.stack = append(c.stack, c.cur)
	c.cur = at
}

// Pop restores the frame node saved by the matching Push.
func (c *Cursor) Pop() {
	n := len(c.stack)
	c.cur = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// AppendLabel sets node's label in place — the "c<value>"/"c<value>h"
// annotation of spec §4.G step 2.
func (c *Cursor) AppendLabel(node int, lbl string) {
	c.Tree.SetLabel(node, lbl)
}

// AttachChildLeaf attaches a new leaf labeled lbl as the last child of
// parent (its first child when parent has none yet) and returns its index.
func (c *Cursor) AttachChildLeaf(parent int, lbl string) int {
	idx := c.Tree.NewLeaf(lbl)
	c.Tree.AppendChild(parent, idx)
	return idx
}

// AttachChildInternal attaches a new unlabeled internal node as the last
// child of parent (its first child when parent has none yet) and returns its
// index.
func (c *Cursor) AttachChildInternal(parent int) int {
	idx := c.Tree.NewInternal()
	c.Tree.AppendChild(parent, idx)
	return idx
}

// AttachRightSiblingLeaf attaches a new leaf labeled lbl as the last child
// of leftSibling's parent, which makes it leftSibling's next sibling when
// leftSibling is currently the last child, and returns its index.
func (c *Cursor) AttachRightSiblingLeaf(leftSibling int, lbl string) int {
	idx := c.Tree.NewLeaf(lbl)
	c.Tree.AppendChild(c.Tree.Parent(leftSibling), idx)
	return idx
}

// AttachRightSiblingInternal attaches a new unlabeled internal node as the
// last child of leftSibling's parent, which makes it leftSibling's next
// sibling when leftSibling is currently the last child, and returns its
// index.
func (c *Cursor) AttachRightSiblingInternal(leftSibling int) int {
	idx := c.Tree.NewInternal()
	c.Tree.AppendChild(c.Tree.Parent(leftSibling), idx)
	return idx
}

// GraftUnder splices a deep copy of src (an entire pruned source tree, or
// any other standalone Tree) into the output tree as a child of parent,
// preserving labels and topology, and returns the root of the grafted
// copy.
func (c *Cursor) GraftUnder(parent int, src *tree.Tree) int {
	var walk func(s int) int
	walk = func(s int) int {
		var dst int
		if src.IsLeaf(s) {
			dst = c.Tree.NewLeaf(src.Label(s))
		} else {
			dst = c.Tree.NewInternal()
			if lbl := src.Label(s); lbl != "" {
				c.Tree.SetLabel(dst, lbl)
			}
		}
		for _, ch := range src.Children(s) {
			c.Tree.AppendChild(dst, walk(ch))
		}
		return dst
	}
	root := walk(src.Root())
	c.Tree.AppendChild(parent, root)
	return root
}
