package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSharedLeafCount(t *testing.T) {
	a := map[string]bool{"A": true, "B": true, "C": true}
	b := map[string]bool{"B": true, "C": true, "D": true}
	require.Equal(t, 2, sharedLeafCount(a, b))
}

func TestTreeIndexForID(t *testing.T) {
	ids := []int{5, 9, 2}
	require.Equal(t, 1, treeIndexForID(ids, 9))
	require.Equal(t, -1, treeIndexForID(ids, 42))
}
