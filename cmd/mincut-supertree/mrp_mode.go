package main

import (
	"log/slog"
	"os"

	"github.com/mincut-supertree/supertree/config"
	"github.com/mincut-supertree/supertree/label"
	"github.com/mincut-supertree/supertree/mrp"
	"github.com/mincut-supertree/supertree/tree"
)

// runMRP implements spec §6's "-m": no supertree is computed, only the
// MRP-encoded character matrix for the input trees.
func runMRP(cfg *config.Config, trees []*tree.Tree, logger *slog.Logger) int {
	tab := label.NewTable()
	for _, t := range trees {
		for _, lbl := range t.LabelSet() {
			tab.Intern(lbl)
		}
	}
	m, err := mrp.Build(trees, tab)
	if err != nil {
		logger.Error("building MRP matrix", "error", err)
		return 5
	}

	f, err := os.Create(cfg.MRPPath)
	if err != nil {
		logger.Error("creating MRP output file", "path", cfg.MRPPath, "error", err)
		return 3
	}
	defer f.Close()

	if err := m.WriteNexus(f); err != nil {
		logger.Error("writing MRP matrix", "path", cfg.MRPPath, "error", err)
		return 5
	}
	logger.Info("MRP matrix written", "path", cfg.MRPPath)
	return 0
}
