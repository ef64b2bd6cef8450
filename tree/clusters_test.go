package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mincut-supertree/supertree/label"
	"github.com/mincut-supertree/supertree/tree"
)

func TestBuildLeafClustersCardinality(t *testing.T) {
	tr, err := tree.Parse("((A,B),C);")
	require.NoError(t, err)
	tr.BuildLeafClusters()
	require.Equal(t, 3, len(tr.Cluster(tr.Root())))
}

func TestLeafAndLabelClustersAgreeOnCardinality(t *testing.T) {
	tr, err := tree.Parse("((A,B),(C,D));")
	require.NoError(t, err)
	tr.BuildLeafClusters()
	leafSizes := make(map[int]int)
	for n := 0; n < tr.NumNodes(); n++ {
		leafSizes[n] = len(tr.Cluster(n))
	}

	tab := label.NewTable()
	tr.BuildLabelClusters(tab)
	for n := 0; n < tr.NumNodes(); n++ {
		require.Equal(t, leafSizes[n], len(tr.Cluster(n)), "node %d", n)
	}
}

func TestBuildLabelClustersInternsSharedLabels(t *testing.T) {
	tab := label.NewTable()
	t1, err := tree.Parse("((A,B),C);")
	require.NoError(t, err)
	t2, err := tree.Parse("((A,C),B);")
	require.NoError(t, err)
	t1.BuildLabelClusters(tab)
	t2.BuildLabelClusters(tab)
	require.Equal(t, 3, tab.Len())
}
