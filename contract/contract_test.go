package contract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mincut-supertree/supertree/cluster"
	"github.com/mincut-supertree/supertree/contract"
)

func seedNodes(ids ...int) *cluster.Graph {
	g := cluster.NewGraph()
	for _, id := range ids {
		g.AddNode(id)
	}
	return g
}

func TestBuildPhase1ContractsUnanimousEdges(t *testing.T) {
	// A-B and C-D are unanimous (weight == wsum == 4); the cross edges are
	// weaker and must survive as a single folded edge between the two
	// merged supernodes.
	st := seedNodes(1, 2, 3, 4)
	st.AddEdge(1, 2, 4)
	st.AddEdge(3, 4, 4)
	st.AddEdge(1, 3, 1)
	st.AddEdge(1, 4, 1)
	st.AddEdge(2, 3, 1)
	st.AddEdge(2, 4, 1)

	co := seedNodes(1, 2, 3, 4)
	fan := seedNodes(1, 2, 3, 4)

	res, err := contract.Build(st, co, fan, 4, contract.SempleSteel)
	require.NoError(t, err)
	require.Equal(t, 2, res.Phase1Merges)

	live := st.LiveEdges()
	require.Len(t, live, 1)
	require.Equal(t, int64(4), live[0].Weight)
	require.Len(t, st.LiveNodes(), 2)
}

func TestBuildRejectsEmptyGraph(t *testing.T) {
	st := cluster.NewGraph()
	co := cluster.NewGraph()
	fan := cluster.NewGraph()
	_, err := contract.Build(st, co, fan, 0, contract.SempleSteel)
	require.ErrorIs(t, err, contract.ErrEmptyGraph)
}

func TestBuildPhase2KeepsAContradictedBridge(t *testing.T) {
	// A path 1-2-3-4 with no triangles: the 2-3 edge is contradicted (CO
	// sees it co-occur three times against one nesting) while 1-2 and 3-4
	// are uncontradicted. Hiding 2-3 splits the path into {1,2} and {3,4},
	// each of which collapses to one node; the contradicted edge is then
	// restored as the sole remaining bridge between the two supernodes.
	st := seedNodes(1, 2, 3, 4)
	st.AddEdge(1, 2, 1)
	st.AddEdge(2, 3, 1)
	st.AddEdge(3, 4, 1)

	co := seedNodes(1, 2, 3, 4)
	co.AddEdge(1, 2, 1)
	for i := 0; i < 3; i++ {
		co.AddEdge(2, 3, 1)
	}
	co.AddEdge(3, 4, 1)

	fan := seedNodes(1, 2, 3, 4)

	res, err := contract.Build(st, co, fan, 3, contract.ROD1)
	require.NoError(t, err)
	require.True(t, res.Phase2Ran)
	require.Len(t, st.LiveNodes(), 2)
	require.Len(t, st.LiveEdges(), 1)
}
