package supertree

import (
	"math"

	"github.com/mincut-supertree/supertree/cluster"
	"github.com/mincut-supertree/supertree/label"
	"github.com/mincut-supertree/supertree/tree"
)

// buildGraphs runs spec §4.G step 1 for one recursion frame: build ST, its
// CO and fan auxiliaries, and accumulate wₛᵤₘ. Every tree in trees has its
// label-number clusters rebuilt against tab (idempotent — indices already
// interned are reused, new leaves seen for the first time at a nested
// frame are interned here).
//
// ST accumulates a pair's weight exactly once per tree, at the pair's
// lowest proper (non-root) common ancestor: for every non-root internal
// node n and every two of its *distinct* children, every leaf under one
// paired with every leaf under the other gets w(t) added once. This reads
// invariant §8.2 ("weight(u,v) equals the sum of source-tree weights in
// which u and v co-occur in at least one cluster") as counting each
// qualifying tree once rather than once per ancestor level a pair happens
// to nest under — adding at every ancestor (not just the lowest) would
// multiply-count deeply nested pairs and let an edge exceed wₛᵤₘ even
// when every tree agrees on it only once. Excluding the root keeps
// invariant §8.2's "no edge reaches wₛᵤₘ after phase 1" meaningful, since
// counting the root too would give every leaf pair weight wₛᵤₘ from the
// root alone and collapse the whole graph in phase 1 regardless of any
// real conflict.
//
// fan only ever looks at a tree's root: for each source tree whose root has
// more than two children (original_source/supertree.cpp's MakeFanGraph
// block, ~lines 894-936 — `if (root->GetDegree() > 2)`, pairing only
// `root->GetChild()` and its siblings, no recursion into subtrees), every
// pair of distinct root children contributes a unit edge (the original's
// `fan.AddEdge` call takes no weight argument, so every contribution is 1
// regardless of w(t)) between every leaf under one and every leaf under
// the other. A polytomy below the root never touches fan, matching the
// original exactly rather than the broader "detect unresolved splits
// anywhere" reading used in an earlier revision.
func buildGraphs(trees []*tree.Tree, tab *label.Table) (st, co, fan *cluster.Graph, wsum int64) {
	st, co, fan = cluster.NewGraph(), cluster.NewGraph(), cluster.NewGraph()

	for _, t := range trees {
		if t.Empty() {
			continue
		}
		t.BuildLabelClusters(tab)
		w := treeWeight(t)
		wsum += w

		for _, leaf := range t.Leaves() {
			idx := t.Cluster(leaf)[0]
			st.AddNode(idx)
			co.AddNode(idx)
			fan.AddNode(idx)
		}

		root := t.Root()
		addPairwise(co, t.Cluster(root), 1)

		walkInternal(t, root, func(n int) {
			if n == root {
				return
			}
			children := t.Children(n)
			for i := 0; i < len(children); i++ {
				for j := i + 1; j < len(children); j++ {
					addCross(st, t.Cluster(children[i]), t.Cluster(children[j]), w)
				}
			}
		})

		rootChildren := t.Children(root)
		if len(rootChildren) > 2 {
			for i := 0; i < len(rootChildren); i++ {
				for j := i + 1; j < len(rootChildren); j++ {
					addCross(fan, t.Cluster(rootChildren[i]), t.Cluster(rootChildren[j]), 1)
				}
			}
		}
	}
	return st, co, fan, wsum
}

// treeWeight rounds a source tree's float weight (spec §6's "[&W n]"
// annotation) to the nearest integer tree weight the graphs deal in.
func treeWeight(t *tree.Tree) int64 {
	return int64(math.Round(t.Weight))
}

// walkInternal visits every non-leaf node of t reachable from n, n
// included.
func walkInternal(t *tree.Tree, n int, visit func(int)) {
	if t.IsLeaf(n) {
		return
	}
	visit(n)
	for _, c := range t.Children(n) {
		walkInternal(t, c, visit)
	}
}

// addPairwise adds weight w between every distinct pair drawn from set.
func addPairwise(g *cluster.Graph, set []int, w int64) {
	for i := 0; i < len(set); i++ {
		for j := i + 1; j < len(set); j++ {
			g.AddEdge(set[i], set[j], w)
		}
	}
}

// addCross adds weight w between every pair (a, b) with a in left and b
// in right — the fan graph's "one edge per pair of children" rule (spec
// §4.D / GLOSSARY).
func addCross(g *cluster.Graph, left, right []int, w int64) {
	for _, a := range left {
		for _, b := range right {
			g.AddEdge(a, b, w)
		}
	}
}
