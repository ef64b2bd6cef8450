package contract

import "github.com/mincut-supertree/supertree/cluster"

// Algorithm selects how far the builder contracts ST (the CLI's -a flag).
type Algorithm int

const (
	// SempleSteel runs phase 1 only: contract unanimous-nesting edges.
	SempleSteel Algorithm = 0
	// ROD1 runs phase 1 then phase 2: additionally contract uncontradicted
	// edges using CO and fan.
	ROD1 Algorithm = 1
)

// Result carries the bookkeeping the recursive supertree procedure needs
// after contracting ST into ST/Eₘₐₓ.
type Result struct {
	// Phase1Merges is how many unanimous-nesting merges were performed.
	Phase1Merges int
	// Phase2Ran reports whether the ROD1 extension executed.
	Phase2Ran bool
	// ContradictedOnlyDisconnected is the §9 "h" condition: true iff,
	// during phase 2, hiding only the strictly-contradicted edges (not the
	// adjacent-to-contradicted spread) already disconnected the graph.
	ContradictedOnlyDisconnected bool
}

// Build contracts st in place into ST/Eₘₐₓ, replaying every merge onto co
// and fan so their node-id space stays aligned with st's. wsum is the sum
// of all source-tree weights accumulated while building st.
func Build(st, co, fan *cluster.Graph, wsum int64, algo Algorithm) (Result, error) {
	if len(st.LiveNodes()) == 0 {
		return Result{}, ErrEmptyGraph
	}

	merges, err := phase1(st, co, fan, wsum)
	if err != nil {
		return Result{}, err
	}
	res := Result{Phase1Merges: merges}

	if algo == ROD1 {
		disconnected, err := phase2(st, co, fan)
		if err != nil {
			return res, err
		}
		res.Phase2Ran = true
		res.ContradictedOnlyDisconnected = disconnected
	}
	return res, nil
}
