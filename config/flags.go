package config

import (
	"github.com/spf13/pflag"
)

// ParseArgs parses args (typically os.Args[1:]) against spec §6's flag
// table using GNU-style long/short flags (e.g. both -p and --postscript),
// and returns the resulting Config. The sole positional argument is the
// source-tree path; zero or more than one positional argument is a
// *UsageError.
func ParseArgs(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("mincut-supertree", pflag.ContinueOnError)
	fs.SetOutput(new(discard))

	cfg := &Config{Algorithm: ROD1}

	fs.StringVarP(&cfg.PostscriptPath, "postscript", "p", "", "emit the supertree as PostScript to <path>")
	fs.StringVarP(&cfg.NexusPath, "nexus", "n", "", "emit the supertree in a NEXUS trees block to <path>")
	fs.StringVarP(&cfg.NewickPath, "newick", "k", "", "emit the supertree in Newick format to <path>")
	fs.StringVarP(&cfg.MRPPath, "mrp", "m", "", "emit an MRP character matrix for the source trees to <path>")

	algo := int(ROD1)
	fs.IntVarP(&algo, "algorithm", "a", algo, "0 = Semple-Steel only, 1 = ROD1 variant")

	fs.IntVarP(&cfg.ClusterK, "cluster", "c", 0, "skip the supertree; emit the k-cluster graph and its components")

	fs.BoolVarP(&cfg.RespectWeights, "weights", "w", false, "respect per-tree [&W n] weight annotations")
	fs.BoolVarP(&cfg.LeafLabels, "labels", "l", false, "use leaf labels, not numeric indices, in graph dumps")
	fs.BoolVarP(&cfg.DumpGML, "gml", "g", false, "write intermediate ST/ST-Emax graphs as GML")
	fs.BoolVarP(&cfg.DumpDOT, "dot", "d", false, "write intermediate ST/ST-Emax graphs as Graphviz DOT")
	fs.BoolVarP(&cfg.Verbose, "verbose", "b", false, "verbose progress logging")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{Flag: "<flags>", Msg: err.Error()}
	}

	cfg.Algorithm = Algorithm(algo)
	if cfg.Algorithm != SempleSteel && cfg.Algorithm != ROD1 {
		return nil, &UsageError{Flag: "-a", Msg: "algorithm selector must be 0 or 1"}
	}
	cfg.HasClusterK = fs.Changed("cluster")

	if cfg.ShowVersion {
		return cfg, nil
	}

	positional := fs.Args()
	if len(positional) != 1 {
		return nil, &UsageError{Flag: "<source-tree-file>", Msg: "exactly one positional source-tree file is required"}
	}
	cfg.InputPath = positional[0]

	return cfg, nil
}

// discard implements io.Writer, silencing pflag's own usage/error output
// so the driver can format its own UsageError uniformly.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
