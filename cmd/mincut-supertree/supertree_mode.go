package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mincut-supertree/supertree/cluster"
	"github.com/mincut-supertree/supertree/config"
	"github.com/mincut-supertree/supertree/contract"
	"github.com/mincut-supertree/supertree/label"
	"github.com/mincut-supertree/supertree/render"
	"github.com/mincut-supertree/supertree/supertree"
	"github.com/mincut-supertree/supertree/tree"
)

// runSupertree implements the default mode: compute the supertree and
// write it to whichever of -p/-n/-k were given.
func runSupertree(cfg *config.Config, trees []*tree.Tree, logger *slog.Logger) int {
	algo := contract.SempleSteel
	if cfg.Algorithm == config.ROD1 {
		algo = contract.ROD1
	}

	var opts []supertree.Option
	if cfg.DumpGML || cfg.DumpDOT {
		opts = append(opts, supertree.WithObserver(intermediateGraphDumper(cfg, logger)))
	}

	result, _, err := supertree.Run(trees, algo, opts...)
	if err != nil {
		var inv *supertree.InvariantViolation
		if errors.As(err, &inv) {
			logger.Error("invariant violation", "level", inv.Level, "detail", inv.Error())
		} else {
			logger.Error("building supertree", "error", err)
		}
		return 6
	}
	logger.Info("supertree built", "nodes", result.NumNodes())

	if cfg.NewickPath != "" {
		if err := os.WriteFile(cfg.NewickPath, []byte(result.Newick()+"\n"), 0o644); err != nil {
			logger.Error("writing Newick output", "path", cfg.NewickPath, "error", err)
			return 5
		}
		logger.Info("Newick written", "path", cfg.NewickPath)
	}

	if cfg.NexusPath != "" {
		if err := writeFile(cfg.NexusPath, func(f *os.File) error {
			return render.NexusTrees(f, []*tree.Tree{result})
		}); err != nil {
			logger.Error("writing NEXUS output", "path", cfg.NexusPath, "error", err)
			return 5
		}
		logger.Info("NEXUS written", "path", cfg.NexusPath)
	}

	if cfg.PostscriptPath != "" {
		if err := writeFile(cfg.PostscriptPath, func(f *os.File) error {
			return render.PostScript(f, result)
		}); err != nil {
			logger.Error("writing PostScript output", "path", cfg.PostscriptPath, "error", err)
			return 5
		}
		logger.Info("PostScript written", "path", cfg.PostscriptPath)
	}

	return 0
}

// intermediateGraphDumper returns an Observer writing every ST/ST-Eₘₐₓ
// graph Run passes through to ST<i>.gml/STEmax<i>.gml (spec §6's "-g") and
// equivalently .dot files ("-d"). Write failures are logged but do not
// abort the run, since these are diagnostic side outputs.
func intermediateGraphDumper(cfg *config.Config, logger *slog.Logger) supertree.Observer {
	return func(index int, stage supertree.Stage, g *cluster.Graph, tab *label.Table) {
		name := "ST"
		if stage == supertree.StageSTEmax {
			name = "STEmax"
		}
		if cfg.DumpGML {
			path := fmt.Sprintf("%s%d.gml", name, index)
			if err := writeFile(path, func(f *os.File) error {
				return render.GML(f, g, tab, cfg.LeafLabels)
			}); err != nil {
				logger.Warn("writing intermediate GML", "path", path, "error", err)
			}
		}
		if cfg.DumpDOT {
			path := fmt.Sprintf("%s%d.dot", name, index)
			if err := writeFile(path, func(f *os.File) error {
				return render.DOT(f, g, tab, cfg.LeafLabels)
			}); err != nil {
				logger.Warn("writing intermediate DOT", "path", path, "error", err)
			}
		}
	}
}
