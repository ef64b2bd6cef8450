package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mincut-supertree/supertree/tree"
)

func TestParseSimpleTriple(t *testing.T) {
	tr, err := tree.Parse("((A,B),C);")
	require.NoError(t, err)
	require.Equal(t, 3, len(tr.Leaves()))
	require.ElementsMatch(t, []string{"A", "B", "C"}, tr.LabelSet())
	require.Equal(t, 3, tr.LeafCount(tr.Root()))
}

func TestParseRoundTrip(t *testing.T) {
	tr, err := tree.Parse("((A,B),C);")
	require.NoError(t, err)
	out := tr.Newick()
	reparsed, err := tree.Parse(out)
	require.NoError(t, err)
	require.ElementsMatch(t, tr.LabelSet(), reparsed.LabelSet())
	require.Equal(t, out, reparsed.Newick())
}

func TestParseUnderscoreBecomesSpace(t *testing.T) {
	tr, err := tree.Parse("(Homo_sapiens,Pan_troglodytes);")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Homo sapiens", "Pan troglodytes"}, tr.LabelSet())
}

func TestParseQuotedLabel(t *testing.T) {
	tr, err := tree.Parse("('A B',C);")
	require.NoError(t, err)
	require.Contains(t, tr.LabelSet(), "A B")
}

func TestParseEdgeLengths(t *testing.T) {
	tr, err := tree.Parse("(A:1.5,B:2.0):0.1;")
	require.NoError(t, err)
	leaves := tr.Leaves()
	var sawLen bool
	for _, n := range leaves {
		if v, ok := tr.EdgeLength(n); ok && v > 0 {
			sawLen = true
		}
	}
	require.True(t, sawLen)
}

func TestParseNegativeEdgeLengthClamps(t *testing.T) {
	tr, err := tree.Parse("(A:-1,B);")
	require.NoError(t, err)
	v, ok := tr.EdgeLength(tr.Leaves()[0])
	require.True(t, ok)
	require.Equal(t, 0.0, v)
}

func TestParseUnbalancedParens(t *testing.T) {
	_, err := tree.Parse("((A,B),C;")
	require.Error(t, err)
	require.ErrorIs(t, err, tree.ErrSyntax)
}

func TestParsePrematureEnd(t *testing.T) {
	_, err := tree.Parse("(A,B")
	require.Error(t, err)
	var perr *tree.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseMissingLeafLabel(t *testing.T) {
	_, err := tree.Parse("(,B);")
	require.Error(t, err)
}

func TestParseUnrootedFlag(t *testing.T) {
	tr, err := tree.Parse("(A,B,C);")
	require.NoError(t, err)
	require.True(t, tr.Unrooted)
}

func TestParseNumericLabel(t *testing.T) {
	tr, err := tree.Parse("(123,456);")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"123", "456"}, tr.LabelSet())
}
