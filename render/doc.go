// Package render writes the output formats of spec §6 that are not plain
// Newick (tree.Tree.Newick already covers that): PostScript, a NEXUS trees
// block, and GML/DOT dumps of a cluster.Graph. Every emitter takes an
// io.Writer so the driver decides whether the destination is a file or
// (for diagnostics) stdout.
package render
