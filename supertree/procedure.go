package supertree

import (
	"fmt"
	"sort"

	"github.com/mincut-supertree/supertree/allmincuts"
	"github.com/mincut-supertree/supertree/cluster"
	"github.com/mincut-supertree/supertree/contract"
	"github.com/mincut-supertree/supertree/label"
	"github.com/mincut-supertree/supertree/mincut"
	"github.com/mincut-supertree/supertree/tree"
)

// Run builds the supertree for trees under algo (spec §4.G's outer call,
// `mincut_supertree(T, P)`, invoked once on the full tree set with a fresh
// cursor). It returns the grown output tree and the label table assigning
// every distinct leaf label its stable index, which callers also need for
// MRP export and graph rendering.
func Run(trees []*tree.Tree, algo contract.Algorithm, opts ...Option) (*tree.Tree, *label.Table, error) {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	tab := label.NewTable()
	for _, t := range trees {
		if !t.Empty() {
			t.BuildLabelClusters(tab)
		}
	}

	cursor := NewCursor()
	counter := 0
	if err := recurse(cursor, trees, tab, algo, 0, &o, &counter); err != nil {
		return nil, nil, err
	}
	cursor.Tree.Update()
	return cursor.Tree, tab, nil
}

// recurse implements spec §4.G steps 1-4 for one invocation, growing the
// output tree under cursor.Current(). counter numbers frames across the
// whole recursion for Observer's benefit.
func recurse(cursor *Cursor, trees []*tree.Tree, tab *label.Table, algo contract.Algorithm, level int, o *runOptions, counter *int) error {
	frame := cursor.Current()

	// Step 1: build ST (with CO/fan auxiliaries) and wsum.
	st, co, fan, wsum := buildGraphs(trees, tab)
	*counter++
	index := *counter
	if o.observer != nil {
		o.observer(index, StageST, st, tab)
	}

	var comps [][]cluster.NodeID
	if !st.IsConnected() {
		// Step 2 (disconnected branch): skip contraction/min-cut entirely.
		cursor.AppendLabel(frame, "c0")
		comps = st.Components()
	} else {
		res, err := contract.Build(st, co, fan, wsum, algo)
		if err != nil {
			return &InvariantViolation{Level: level, Detail: err.Error()}
		}
		if o.observer != nil {
			o.observer(index, StageSTEmax, st, tab)
		}

		nodes := st.LiveNodes()
		edges := stEdges(st)
		cutVal, witnesses, err := mincut.Run(nodes, toMincutEdges(edges))
		if err != nil {
			return &InvariantViolation{Level: level, Detail: err.Error()}
		}

		if len(witnesses) > 0 {
			marked, err := allmincuts.Mark(nodes, toAllMinCutsEdges(edges), toAllMinCutsWitnesses(witnesses))
			if err != nil {
				return &InvariantViolation{Level: level, Detail: err.Error()}
			}
			for _, e := range edges {
				if marked[e.ID] {
					_ = st.HideEdge(e.ID)
				}
			}
		}

		cutLabel := fmt.Sprintf("c%d", cutVal)
		if algo == contract.ROD1 && res.Phase2Ran && res.ContradictedOnlyDisconnected {
			cutLabel += "h"
		}
		cursor.AppendLabel(frame, cutLabel)
		comps = st.Components()
	}

	if len(comps) < 2 {
		return &InvariantViolation{
			Level:     level,
			Detail:    "minimum cut failed to split a connected proper-cluster graph",
			Component: len(comps),
		}
	}

	// Step 3/4: enumerate components, attach each side, recursing where
	// |V| >= 3 still leaves more than one source tree in contention.
	var lastChild int
	for i, comp := range comps {
		attachSide := i == 0

		leaves, err := componentLabels(st, tab, comp)
		if err != nil {
			return &InvariantViolation{Level: level, Detail: err.Error(), Component: len(comps)}
		}
		sort.Strings(leaves)

		switch {
		case len(leaves) == 1:
			if attachSide {
				lastChild = cursor.AttachChildLeaf(frame, leaves[0])
			} else {
				lastChild = cursor.AttachRightSiblingLeaf(lastChild, leaves[0])
			}

		case len(leaves) == 2:
			var cherry int
			if attachSide {
				cherry = cursor.AttachChildInternal(frame)
			} else {
				cherry = cursor.AttachRightSiblingInternal(lastChild)
			}
			cursor.AttachChildLeaf(cherry, leaves[0])
			cursor.AttachRightSiblingLeaf(firstChildOf(cursor.Tree, cherry), leaves[1])
			lastChild = cherry

		default:
			keep := make(map[string]bool, len(leaves))
			for _, l := range leaves {
				keep[l] = true
			}
			var pruned []*tree.Tree
			for _, t := range trees {
				if t.Empty() {
					continue
				}
				p := t.Prune(keep)
				if !p.Empty() {
					pruned = append(pruned, p)
				}
			}

			var host int
			if attachSide {
				host = cursor.AttachChildInternal(frame)
			} else {
				host = cursor.AttachRightSiblingInternal(lastChild)
			}

			switch len(pruned) {
			case 0:
				return &InvariantViolation{Level: level, Detail: "component produced no surviving pruned trees", Component: len(comps)}
			case 1:
				cursor.GraftUnder(host, pruned[0])
			default:
				cursor.Push(host)
				if err := recurse(cursor, pruned, tab, algo, level+1, o, counter); err != nil {
					return err
				}
				cursor.Pop()
			}
			lastChild = host
		}
	}
	return nil
}

// firstChildOf returns n's first child; used only right after the cherry
// internal node is created, when it has exactly one child so far.
func firstChildOf(t *tree.Tree, n int) int {
	return t.Children(n)[0]
}

// componentLabels resolves a component's live-node ids to the set of
// original leaf labels it represents (the union of their node-sets).
func componentLabels(st *cluster.Graph, tab *label.Table, comp []cluster.NodeID) ([]string, error) {
	var out []string
	for _, n := range comp {
		for _, idx := range st.NodeSet(n) {
			lbl, err := tab.Label(idx)
			if err != nil {
				return nil, err
			}
			out = append(out, lbl)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty component")
	}
	return out, nil
}

func stEdges(st *cluster.Graph) []cluster.Edge {
	return st.LiveEdges()
}

func toMincutEdges(edges []cluster.Edge) []mincut.Edge {
	out := make([]mincut.Edge, len(edges))
	for i, e := range edges {
		out[i] = mincut.Edge{ID: e.ID, U: e.U, V: e.V, Weight: e.Weight}
	}
	return out
}

func toAllMinCutsEdges(edges []cluster.Edge) []allmincuts.Edge {
	out := make([]allmincuts.Edge, len(edges))
	for i, e := range edges {
		out[i] = allmincuts.Edge{ID: e.ID, U: e.U, V: e.V, Weight: e.Weight}
	}
	return out
}

func toAllMinCutsWitnesses(witnesses []mincut.Witness) []allmincuts.Witness {
	out := make([]allmincuts.Witness, len(witnesses))
	for i, w := range witnesses {
		out[i] = allmincuts.Witness{S: w.S, T: w.T}
	}
	return out
}
