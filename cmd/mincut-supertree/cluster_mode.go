package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mincut-supertree/supertree/cluster"
	"github.com/mincut-supertree/supertree/config"
	"github.com/mincut-supertree/supertree/label"
	"github.com/mincut-supertree/supertree/render"
	"github.com/mincut-supertree/supertree/tree"
)

// runClusterMode implements spec §6's "-c <k>": instead of computing a
// supertree, build a graph with one node per source tree and an edge
// between two trees whenever they share at least k leaf labels, dump it
// as GML/DOT when asked, and write each connected component's member
// trees to its own NEXUS file (original_source/supertree.cpp's
// MakeClusterGraph, ~lines 1727-1866).
func runClusterMode(cfg *config.Config, trees []*tree.Tree, logger *slog.Logger) int {
	k := cfg.ClusterK
	logger.Info("computing cluster graph", "k", k)

	leafSets := make([]map[string]bool, len(trees))
	for i, t := range trees {
		set := make(map[string]bool)
		for _, lbl := range t.LabelSet() {
			set[lbl] = true
		}
		leafSets[i] = set
	}

	tab := label.NewTable()
	treeIDs := make([]int, len(trees))
	g := cluster.NewGraph()
	for i := range trees {
		id := tab.Intern(treeName(trees[i], i))
		treeIDs[i] = id
		g.AddNode(id)
	}

	for i := 1; i < len(trees); i++ {
		for j := 0; j < i; j++ {
			shared := sharedLeafCount(leafSets[i], leafSets[j])
			if shared >= k {
				g.AddEdge(treeIDs[i], treeIDs[j], int64(shared))
			}
		}
	}

	if cfg.DumpGML {
		if err := writeFile("cluster.gml", func(f *os.File) error {
			return render.GML(f, g, tab, true)
		}); err != nil {
			logger.Error("writing cluster graph GML", "error", err)
			return 5
		}
		logger.Info("cluster graph written", "path", "cluster.gml")
	}
	if cfg.DumpDOT {
		if err := writeFile("cluster.dot", func(f *os.File) error {
			return render.DOT(f, g, tab, true)
		}); err != nil {
			logger.Error("writing cluster graph DOT", "error", err)
			return 5
		}
		logger.Info("cluster graph written", "path", "cluster.dot")
	}

	comps := g.Components()
	if g.IsConnected() {
		logger.Info("cluster graph is connected")
	} else {
		logger.Warn("cluster graph is not connected", "components", len(comps), "k", k)
	}

	for count, comp := range comps {
		path := fmt.Sprintf("cluster.k%d.%d.%d.tre", k, count+1, len(comp))
		members := make([]*tree.Tree, 0, len(comp))
		for _, id := range comp {
			members = append(members, trees[treeIndexForID(treeIDs, id)])
		}
		if err := writeFile(path, func(f *os.File) error {
			return render.NexusTrees(f, members)
		}); err != nil {
			logger.Error("writing cluster component", "path", path, "error", err)
			return 5
		}
		logger.Info("cluster component written", "path", path, "size", len(comp))
	}
	return 0
}

// treeName returns t's name, falling back to a stable positional name so
// every tree gets a distinct cluster-graph node label even when unnamed.
func treeName(t *tree.Tree, i int) string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("tree%d", i+1)
}

func sharedLeafCount(a, b map[string]bool) int {
	n := 0
	for lbl := range a {
		if b[lbl] {
			n++
		}
	}
	return n
}

func treeIndexForID(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
