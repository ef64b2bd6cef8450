package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mincut-supertree/supertree/tree"
)

func TestRemoveLeafSuppressesUnaryParent(t *testing.T) {
	tr, err := tree.Parse("((A,B),C);")
	require.NoError(t, err)
	var bIdx int
	for _, n := range tr.Leaves() {
		if tr.Label(n) == "B" {
			bIdx = n
		}
	}
	require.NoError(t, tr.RemoveLeaf(bIdx))
	require.ElementsMatch(t, []string{"A", "C"}, tr.LabelSet())
	require.Equal(t, 2, tr.LeafCount(tr.Root()))
	require.Equal(t, 2, tr.Degree(tr.Root()))
}

func TestCopySubtreePreservesLabels(t *testing.T) {
	tr, err := tree.Parse("((A,B),C);")
	require.NoError(t, err)
	var cherry int
	for _, n := range tr.Children(tr.Root()) {
		if len(tr.Children(n)) == 2 {
			cherry = n
		}
	}
	sub := tr.CopySubtree(cherry)
	require.ElementsMatch(t, []string{"A", "B"}, sub.LabelSet())
}

func TestPruneDropsLeaves(t *testing.T) {
	tr, err := tree.Parse("((A,B),(C,D));")
	require.NoError(t, err)
	pruned := tr.Prune(map[string]bool{"A": true, "C": true, "D": true})
	require.ElementsMatch(t, []string{"A", "C", "D"}, pruned.LabelSet())
}

func TestPruneToEmpty(t *testing.T) {
	tr, err := tree.Parse("(A,B);")
	require.NoError(t, err)
	pruned := tr.Prune(map[string]bool{})
	require.True(t, pruned.Empty())
}
