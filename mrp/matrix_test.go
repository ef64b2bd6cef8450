package mrp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mincut-supertree/supertree/label"
	"github.com/mincut-supertree/supertree/mrp"
	"github.com/mincut-supertree/supertree/tree"
)

func TestBuildRejectsNoTrees(t *testing.T) {
	_, err := mrp.Build(nil, label.NewTable())
	require.ErrorIs(t, err, mrp.ErrNoTrees)
}

func TestWriteNexusIncludesOutgroupAndAllTaxa(t *testing.T) {
	tab := label.NewTable()
	a, err := tree.Parse("(A,B,(C,D));")
	require.NoError(t, err)
	a.Name = "t1"
	b, err := tree.Parse("(A,(B,E));")
	require.NoError(t, err)
	b.Name = "t2"

	for _, lbl := range []string{"A", "B", "C", "D", "E"} {
		tab.Intern(lbl)
	}

	m, err := mrp.Build([]*tree.Tree{a, b}, tab)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, m.WriteNexus(&buf))
	out := buf.String()

	require.Contains(t, out, "dimensions ntax=6;") // 5 leaves + outgroup
	require.Contains(t, out, "mrp_outgroup")
	require.Contains(t, out, "'A'")
	require.Contains(t, out, "'E'")
	require.Contains(t, out, "begin characters;")
	require.Contains(t, out, "transpose nolabels;")
	require.Contains(t, out, "[t1]")
	require.Contains(t, out, "[t2]")
	require.Contains(t, out, "charset t1 =")
	require.Contains(t, out, "charset t2 =")

	// A row not fully known to a tree carries a '?' for the taxa that
	// tree's root cluster excludes (E for t1, C/D for t2).
	lines := strings.Split(out, "\n")
	foundQuestionMark := false
	for _, l := range lines {
		if strings.HasPrefix(l, "0") && strings.Contains(l, "?") {
			foundQuestionMark = true
			break
		}
	}
	require.True(t, foundQuestionMark)
}
