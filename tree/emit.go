package tree

import (
	"strconv"
	"strings"
)

// Newick serializes t to Newick format with a stable left-to-right child
// order (the order nodes were attached in) and a trailing ';'.
func (t *Tree) Newick() string {
	if t.Empty() {
		return ";"
	}
	var sb strings.Builder
	t.writeNode(&sb, t.Root())
	sb.WriteByte(';')
	return sb.String()
}

func (t *Tree) writeNode(sb *strings.Builder, n int) {
	children := t.Children(n)
	if len(children) > 0 {
		sb.WriteByte('(')
		for i, c := range children {
			if i > 0 {
				sb.WriteByte(',')
			}
			t.writeNode(sb, c)
		}
		sb.WriteByte(')')
	}
	sb.WriteString(quoteLabel(t.Label(n)))
	if v, ok := t.EdgeLength(n); ok {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
}

// quoteLabel renders lbl for Newick output: labels containing a structural
// character are single-quoted (with embedded quotes doubled); other labels
// have spaces rewritten back to underscores, mirroring the parser's
// underscore-to-space convention in reverse.
func quoteLabel(lbl string) string {
	if lbl == "" {
		return ""
	}
	if strings.ContainsAny(lbl, "(),:;'") {
		return "'" + strings.ReplaceAll(lbl, "'", "''") + "'"
	}
	return strings.ReplaceAll(lbl, " ", "_")
}
