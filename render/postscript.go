package render

import (
	"fmt"
	"io"

	"github.com/mincut-supertree/supertree/tree"
)

// postscript page geometry, A4 with a one-inch margin on every side
// (original_source/TreeLib/gport/gport.cpp's GetPrintingRect: 595-144 x
// 842-144 points usable after the margin).
const (
	psPageWidth  = 595
	psPageHeight = 842
	psMargin     = 72
	psLeafGapY   = 14 // vertical spacing between adjacent leaves
)

// PostScript renders t as a slanted cladogram (one straight line from each
// parent to each child), following the header,
// DrawLine/DrawText procedure definitions, and footer gport.cpp's
// GPostscriptPort::StartPicture/EndPicture emit around a picture.
func PostScript(w io.Writer, t *tree.Tree) error {
	if t.Empty() {
		return ErrEmptyTree
	}

	if _, err := io.WriteString(w, psHeader); err != nil {
		return err
	}

	leaves := t.Leaves()
	usableWidth := psPageWidth - 2*psMargin
	usableHeight := len(leaves) * psLeafGapY
	if usableHeight == 0 {
		usableHeight = psLeafGapY
	}

	y := make(map[int]int, t.NumNodes())
	for i, n := range leaves {
		y[n] = i * psLeafGapY
	}
	depth := treeDepth(t, t.Root())
	if depth == 0 {
		depth = 1
	}
	xStep := usableWidth / depth

	pw := &psWriter{w: w}
	assignY(t, t.Root(), y)
	drawSubtree(pw, t, t.Root(), y, xStep, 0)
	if pw.err != nil {
		return pw.err
	}

	_, err := io.WriteString(w, psFooter)
	return err
}

// treeDepth returns the number of edges on the longest root-to-leaf path.
func treeDepth(t *tree.Tree, n int) int {
	if t.IsLeaf(n) {
		return 0
	}
	max := 0
	for _, c := range t.Children(n) {
		if d := treeDepth(t, c); d > max {
			max = d
		}
	}
	return max + 1
}

// assignY fills in every internal node's y as the integer mean of its
// children's y, post-order, so leaf positions (already seeded) propagate
// upward unchanged.
func assignY(t *tree.Tree, n int, y map[int]int) int {
	if t.IsLeaf(n) {
		return y[n]
	}
	children := t.Children(n)
	sum := 0
	for _, c := range children {
		sum += assignY(t, c, y)
	}
	v := sum / len(children)
	y[n] = v
	return v
}

// drawSubtree draws n's outgoing edges and, at a leaf, its label, then
// recurses into n's children. x is n's depth-derived horizontal position;
// xStep is the per-level horizontal increment.
func drawSubtree(pw *psWriter, t *tree.Tree, n int, y map[int]int, xStep, x int) {
	if t.IsLeaf(n) {
		pw.drawText(x+4, y[n], t.Label(n))
		return
	}
	for _, c := range t.Children(n) {
		childX := x + xStep
		pw.drawLine(x, y[n], childX, y[c])
		drawSubtree(pw, t, c, y, xStep, childX)
	}
}

// psWriter accumulates the first error across a sequence of writes so
// callers can check it once at the end instead of after every call.
type psWriter struct {
	w   io.Writer
	err error
}

func (pw *psWriter) drawLine(x1, y1, x2, y2 int) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, "%d %d %d %d 1 DrawLine\n", x2, y2, x1, y1)
}

func (pw *psWriter) drawText(x, y int, text string) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, "(%s) %d %d DrawText\n", text, x, y)
}

const psHeader = `%!PS-Adobe-2.0
%%Creator: min-cut supertree engine
%%DocumentFonts: Times-Roman
%%Title: supertree
%%BoundingBox: 0 0 595 842
%%Pages: 1
%%EndComments

0 842 translate
72 -72 translate

% Encapsulate drawing a line
%    arguments x1 y1 x2 y2 width
/DrawLine {
   gsave
   setlinewidth
   0 setgray
   moveto
   lineto
   stroke
   grestore
   } bind def

% Encapsulate drawing text
%    arguments x y text
/DrawText {
  gsave 1 setlinewidth 0 setgray
  moveto
  show grestore
} bind def

/Times-Roman findfont
10 scalefont
setfont
`

const psFooter = `showpage
%%Trailer
%%end
%%EOF
`
