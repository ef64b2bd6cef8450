// Command mincut-supertree computes a min-cut supertree (Semple & Steel
// 2000, with the ROD1 uncontradicted-nesting extension) for a set of
// source trees, or emits diagnostic encodings of them, per the flags
// described in config.ParseArgs.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mincut-supertree/supertree/config"
	"github.com/mincut-supertree/supertree/tree"
)

// version is the driver's reported version (spec §6's "-v").
const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run implements the driver end to end and returns the process exit code,
// kept separate from main so it never calls os.Exit itself.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, "usage error:", err)
		return 2
	}

	if cfg.ShowVersion {
		fmt.Fprintln(stdout, "mincut-supertree", version)
		return 0
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	src, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		logger.Error("reading input file", "path", cfg.InputPath, "error", err)
		return 3
	}

	trees, err := tree.ParseSource(string(src), cfg.RespectWeights)
	if err != nil {
		logger.Error("parsing source trees", "error", err)
		return 4
	}
	if len(trees) == 0 {
		logger.Error("input file contains no trees", "path", cfg.InputPath)
		return 4
	}
	logger.Info("parsed source trees", "count", len(trees))

	switch {
	case cfg.MRPPath != "":
		return runMRP(cfg, trees, logger)
	case cfg.HasClusterK:
		return runClusterMode(cfg, trees, logger)
	default:
		return runSupertree(cfg, trees, logger)
	}
}
