package config

// Algorithm mirrors contract.Algorithm's two values without importing the
// contract package, so config stays parseable before the engine packages
// are wired together (spec §6's "-a <n>").
type Algorithm int

const (
	// SempleSteel runs phase 1 contraction only (-a 0).
	SempleSteel Algorithm = 0
	// ROD1 runs phases 1 and 2 (-a 1, the default).
	ROD1 Algorithm = 1
)

// Config is the fully parsed command line (spec §6's flag table).
type Config struct {
	// InputPath is the sole positional argument: the source-tree file.
	InputPath string

	// PostscriptPath, NexusPath, NewickPath, MRPPath name the -p/-n/-k/-m
	// output destinations; empty means the corresponding output is not
	// written. MRPPath being set computes no supertree at all.
	PostscriptPath string
	NexusPath      string
	NewickPath     string
	MRPPath        string

	// ClusterK holds -c's threshold; HasClusterK reports whether -c was
	// given at all (0 is a legal threshold, so a bool flag is needed
	// rather than sentinel-valuing ClusterK).
	ClusterK    int
	HasClusterK bool

	// Algorithm selects phase 1 only vs phase 1+2 (-a).
	Algorithm Algorithm

	// RespectWeights is -w: honor [&W n] tree-weight annotations instead
	// of treating every source tree as weight 1.
	RespectWeights bool
	// LeafLabels is -l: use human-readable labels, not numeric indices,
	// in emitted graph dumps.
	LeafLabels bool
	// DumpGML/DumpDOT are -g/-d: write every intermediate ST/ST-Eₘₐₓ (or,
	// in -c mode, the thresholded cluster graph) as GML/DOT.
	DumpGML bool
	DumpDOT bool
	// Verbose is -b: raise the driver's log level.
	Verbose bool
	// ShowVersion is -v: print the version and exit without reading any
	// input.
	ShowVersion bool
}
