package supertree

import "fmt"

// InvariantViolation reports a detected precondition failure inside the
// recursive procedure itself (spec §7): an empty component, a cluster
// graph that failed to split under a genuine minimum cut, or any other
// condition the algorithm asserts cannot arise on well-formed input. It
// should never fire; if it does, it names the recursion level and the
// component count observed so the failure can be traced back to the
// offending tree set.
type InvariantViolation struct {
	Level     int
	Detail    string
	Component int
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("supertree: invariant violation at recursion level %d (component count %d): %s",
		e.Level, e.Component, e.Detail)
}
