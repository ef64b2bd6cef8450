package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mincut-supertree/supertree/cluster"
)

func TestComponentsSingleComponent(t *testing.T) {
	g := cluster.NewGraph()
	for _, id := range []int{1, 2, 3} {
		g.AddNode(id)
	}
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	require.True(t, g.IsConnected())
	require.Len(t, g.Components(), 1)
}

func TestComponentsSplitAfterHidingBridge(t *testing.T) {
	g := cluster.NewGraph()
	for _, id := range []int{1, 2, 3} {
		g.AddNode(id)
	}
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	e, _ := g.EdgeBetween(2, 3)
	require.NoError(t, g.HideEdge(e.ID))

	require.False(t, g.IsConnected())
	comps := g.Components()
	require.Len(t, comps, 2)
}

func TestComponentsIsolatedNodeIsSingleton(t *testing.T) {
	g := cluster.NewGraph()
	for _, id := range []int{1, 2, 3} {
		g.AddNode(id)
	}
	g.AddEdge(1, 2, 1)
	comps := g.Components()
	require.Len(t, comps, 2)
}
