package scheduler

import "github.com/Friedrichqi/hlschedule/dfg"

// schedulingContext holds everything one call to Schedule needs, owned
// exclusively for the duration of that call. Unlike the original program's
// process-wide globals (DFG*, operations, dependencies, usage_links), a
// context is created fresh per invocation and discarded afterward, so
// concurrent callers never share state (see spec.md §9 and §5).
type schedulingContext struct {
	graph       *dfg.DFG
	ops         []*dfg.Op
	clockPeriod float64

	// deps[i]/uses[i] are rebuilt on every call by graph.Extract; they are
	// rewritten in place by normalize to stay consistent with the
	// permuted statement sequence.
	deps [][]int
	uses [][]int
}

func newSchedulingContext(graph *dfg.DFG, ops []*dfg.Op, clockPeriod float64) *schedulingContext {
	return &schedulingContext{
		graph:       graph,
		ops:         ops,
		clockPeriod: clockPeriod,
	}
}

func (c *schedulingContext) stmts() []*dfg.Stmt {
	return c.graph.Stmts
}
