package supertree

import (
	"github.com/mincut-supertree/supertree/cluster"
	"github.com/mincut-supertree/supertree/label"
)

// Stage identifies which of the two graphs an Observer is being shown for
// one recursion frame (spec §6's "-g"/"-d" intermediate-graph dumps).
type Stage int

const (
	// StageST is ST as built by buildGraphs, before any contraction.
	StageST Stage = iota
	// StageSTEmax is ST/Eₘₐₓ, the quotient graph after phase 1 (and,
	// under ROD1, phase 2) contraction — only reached on the connected
	// branch, since the disconnected branch never contracts anything.
	StageSTEmax
)

// Observer is notified once per recursion frame per stage it reaches.
// index numbers frames in the order Run visits them (1-based, shared
// across the whole recursion, not reset per level); g is the live graph
// at that stage and must not be retained past the call (Run keeps
// mutating it). tab resolves g's node ids back to leaf labels.
type Observer func(index int, stage Stage, g *cluster.Graph, tab *label.Table)

// Option configures a Run call.
type Option func(*runOptions)

type runOptions struct {
	observer Observer
}

// WithObserver registers obs to be called at the ST and ST/Eₘₐₓ stage of
// every recursion frame, the hook `cmd/mincut-supertree` uses to satisfy
// spec §6's "write each intermediate ST and ST/Eₘₐₓ to a GML/DOT file".
func WithObserver(obs Observer) Option {
	return func(o *runOptions) { o.observer = obs }
}
