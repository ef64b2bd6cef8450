package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mincut-supertree/supertree/cluster"
)

func TestAddEdgeAccumulatesWeightAndFrequency(t *testing.T) {
	g := cluster.NewGraph()
	g.AddNode(1)
	g.AddNode(2)
	g.AddEdge(1, 2, 3)
	g.AddEdge(1, 2, 4)

	e, ok := g.EdgeBetween(1, 2)
	require.True(t, ok)
	require.Equal(t, int64(7), e.Weight)
	require.Equal(t, int64(2), e.Freq)
}

func TestAddEdgeIgnoresSelfLoopsAndUnknownNodes(t *testing.T) {
	g := cluster.NewGraph()
	g.AddNode(1)
	g.AddEdge(1, 1, 5)
	g.AddEdge(1, 99, 5)
	require.Empty(t, g.LiveEdges())
}

func TestMergeAbsorbsNodeSetAndRewiresEdges(t *testing.T) {
	g := cluster.NewGraph()
	for _, id := range []int{1, 2, 3} {
		g.AddNode(id)
	}
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 5)

	require.NoError(t, g.Merge(1, 2))
	require.False(t, g.HasNode(2))
	require.ElementsMatch(t, []int{1, 2}, g.NodeSet(1))

	e, ok := g.EdgeBetween(1, 3)
	require.True(t, ok)
	require.Equal(t, int64(5), e.Weight)
}

func TestMergeFoldsParallelEdgeIntoExisting(t *testing.T) {
	g := cluster.NewGraph()
	for _, id := range []int{1, 2, 3} {
		g.AddNode(id)
	}
	g.AddEdge(1, 3, 2)
	g.AddEdge(2, 3, 5)

	require.NoError(t, g.Merge(1, 2))
	e, ok := g.EdgeBetween(1, 3)
	require.True(t, ok)
	require.Equal(t, int64(7), e.Weight)
	require.Equal(t, int64(2), e.Freq)
}

func TestMergeDropsDirectEdgeBetweenMergedNodes(t *testing.T) {
	g := cluster.NewGraph()
	g.AddNode(1)
	g.AddNode(2)
	g.AddEdge(1, 2, 9)
	require.NoError(t, g.Merge(1, 2))
	require.Empty(t, g.LiveEdges())
}

func TestMergeRejectsSelfAndUnknown(t *testing.T) {
	g := cluster.NewGraph()
	g.AddNode(1)
	require.ErrorIs(t, g.Merge(1, 1), cluster.ErrSelfMerge)
	require.ErrorIs(t, g.Merge(1, 2), cluster.ErrUnknownNode)
}

func TestHideRestoreEdge(t *testing.T) {
	g := cluster.NewGraph()
	g.AddNode(1)
	g.AddNode(2)
	g.AddEdge(1, 2, 1)
	e, _ := g.EdgeBetween(1, 2)

	require.NoError(t, g.HideEdge(e.ID))
	require.Empty(t, g.LiveEdges())

	require.NoError(t, g.RestoreEdge(e.ID))
	require.Len(t, g.LiveEdges(), 1)
}
