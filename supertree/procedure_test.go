package supertree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mincut-supertree/supertree/cluster"
	"github.com/mincut-supertree/supertree/contract"
	"github.com/mincut-supertree/supertree/label"
	"github.com/mincut-supertree/supertree/supertree"
	"github.com/mincut-supertree/supertree/tree"
)

func parseAll(t *testing.T, newicks ...string) []*tree.Tree {
	t.Helper()
	out := make([]*tree.Tree, len(newicks))
	for i, s := range newicks {
		tr, err := tree.Parse(s)
		require.NoError(t, err)
		out[i] = tr
	}
	return out
}

// Two cherries contribute no proper-cluster edges at all (the root cluster
// of a two-leaf tree is the whole tree, not a proper one), so ST starts
// with four isolated leaves no matter how the two source trees pair them
// up: the frame is labeled "c0" and all four leaves attach directly to a
// shared, fully unresolved root.
func TestRunDisjointLeafSetsProducesStarWithC0(t *testing.T) {
	trees := parseAll(t, "(A,B);", "(C,D);")

	out, tab, err := supertree.Run(trees, contract.SempleSteel)
	require.NoError(t, err)
	require.Equal(t, 4, tab.Len())

	root := out.Root()
	require.Equal(t, "c0", out.Label(root))
	children := out.Children(root)
	require.Len(t, children, 4)
	labels := make([]string, 0, 4)
	for _, c := range children {
		require.True(t, out.IsLeaf(c))
		labels = append(labels, out.Label(c))
	}
	require.ElementsMatch(t, []string{"A", "B", "C", "D"}, labels)
}

// Two identical trees carry no conflict at all: with the root excluded, ST
// holds only the A-B and C-D edges, so it is disconnected from the start;
// each component becomes a cherry and the output topology reproduces the
// shared input exactly.
func TestRunTwoIdenticalTreesReproducesInputTopology(t *testing.T) {
	trees := parseAll(t, "((A,B),(C,D));", "((A,B),(C,D));")

	out, _, err := supertree.Run(trees, contract.SempleSteel)
	require.NoError(t, err)

	root := out.Root()
	require.Len(t, out.Children(root), 2)
	for _, child := range out.Children(root) {
		require.False(t, out.IsLeaf(child))
		leaves := make([]string, 0, 2)
		for _, leaf := range out.Children(child) {
			leaves = append(leaves, out.Label(leaf))
		}
		require.Len(t, leaves, 2)
	}
}

// ((A,B),C); and ((A,C),B); disagree on every possible resolution of the
// same three leaves: the A-B and A-C edges both end up contradicted in
// phase 2 with no triangle to spread across, hiding either one alone
// disconnects the path, and the frame resolves as an unresolved star
// labeled "c1h" rather than recursing further.
func TestRunConflictingThreeLeafTreesProducesStarWithC1h(t *testing.T) {
	trees := parseAll(t, "((A,B),C);", "((A,C),B);")

	out, _, err := supertree.Run(trees, contract.ROD1)
	require.NoError(t, err)

	root := out.Root()
	require.Equal(t, "c1h", out.Label(root))

	children := out.Children(root)
	require.Len(t, children, 3)
	labels := make([]string, 0, 3)
	for _, c := range children {
		require.True(t, out.IsLeaf(c))
		labels = append(labels, out.Label(c))
	}
	require.ElementsMatch(t, []string{"A", "B", "C"}, labels)
}

// A single two-leaf input tree has no internal node but its root, so ST
// never gets an edge between A and B: both start out disconnected and are
// attached directly under the frame root as two singleton components.
func TestRunTwoLeafInputAttachesCherryDirectly(t *testing.T) {
	trees := parseAll(t, "(A,B);")

	out, _, err := supertree.Run(trees, contract.SempleSteel)
	require.NoError(t, err)

	root := out.Root()
	require.Equal(t, "c0", out.Label(root))
	children := out.Children(root)
	require.Len(t, children, 2)
	labels := []string{out.Label(children[0]), out.Label(children[1])}
	require.ElementsMatch(t, []string{"A", "B"}, labels)
}

// WithObserver fires once at StageST for the one recursion frame a
// disconnected-from-the-start input never progresses past, and never at
// StageSTEmax since that branch skips contraction entirely.
func TestRunWithObserverSeesOnlyStageSTOnDisconnectedInput(t *testing.T) {
	trees := parseAll(t, "(A,B);", "(C,D);")

	var stages []supertree.Stage
	obs := func(index int, stage supertree.Stage, g *cluster.Graph, tab *label.Table) {
		require.Equal(t, 1, index)
		require.NotNil(t, g)
		require.NotNil(t, tab)
		stages = append(stages, stage)
	}

	_, _, err := supertree.Run(trees, contract.SempleSteel, supertree.WithObserver(obs))
	require.NoError(t, err)
	require.Equal(t, []supertree.Stage{supertree.StageST}, stages)
}
