package allmincuts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mincut-supertree/supertree/allmincuts"
)

func TestMarkIdentifiesSoleBottleneckEdge(t *testing.T) {
	// Path 1-2-3 with a strict bottleneck at 1-2 (weight 3 < 5): only the
	// bottleneck edge should be marked as lying in a minimum cut.
	edges := []allmincuts.Edge{
		{ID: 10, U: 1, V: 2, Weight: 3},
		{ID: 20, U: 2, V: 3, Weight: 5},
	}
	marked, err := allmincuts.Mark([]int{1, 2, 3}, edges, []allmincuts.Witness{{S: 1, T: 3}})
	require.NoError(t, err)
	require.True(t, marked[10])
	require.False(t, marked[20])
}

func TestMarkTiedEdgesBothMarked(t *testing.T) {
	// Equal-weight path: either edge alone realizes the same minimum cut
	// value, so both must be marked.
	edges := []allmincuts.Edge{
		{ID: 10, U: 1, V: 2, Weight: 5},
		{ID: 20, U: 2, V: 3, Weight: 5},
	}
	marked, err := allmincuts.Mark([]int{1, 2, 3}, edges, []allmincuts.Witness{{S: 1, T: 3}})
	require.NoError(t, err)
	require.True(t, marked[10])
	require.True(t, marked[20])
}

func TestMarkRejectsUnknownWitness(t *testing.T) {
	_, err := allmincuts.Mark([]int{1, 2}, nil, []allmincuts.Witness{{S: 1, T: 99}})
	require.ErrorIs(t, err, allmincuts.ErrUnknownWitness)
}
