package render

import (
	"fmt"
	"io"

	"github.com/mincut-supertree/supertree/tree"
)

// NexusTrees emits trees as a minimal NEXUS trees block (spec §6): a
// "#NEXUS" header, an auto-generated comment, and one "tree <name> = [&R]
// <newick>;" statement per tree. A tree's own Name is used when set,
// otherwise "tree<i>" (1-indexed). Every statement is marked [&R] since
// the engine only ever produces rooted trees.
func NexusTrees(w io.Writer, trees []*tree.Tree) error {
	if len(trees) == 0 {
		return ErrEmptyTree
	}
	if _, err := fmt.Fprintln(w, "#NEXUS"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "[generated by the min-cut supertree engine]"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "begin trees;"); err != nil {
		return err
	}
	for i, t := range trees {
		if t.Empty() {
			return ErrEmptyTree
		}
		name := t.Name
		if name == "" {
			name = fmt.Sprintf("tree%d", i+1)
		}
		if _, err := fmt.Fprintf(w, "\ttree %s = [&R] %s\n", name, t.Newick()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "end;")
	return err
}
