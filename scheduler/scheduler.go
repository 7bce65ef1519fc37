// Package scheduler implements the high-level-synthesis operation
// scheduler: topological normalization, an ASAP pass, an ALAP pass, and a
// resource-and-timing-constrained list scheduler, orchestrated by Schedule.
package scheduler

import (
	"github.com/Friedrichqi/hlschedule/dfg"
	"github.com/nikandfor/tlog"
)

// Schedule assigns every statement in graph a start cycle that respects
// data dependencies, per-op resource limits, and the clock period, then
// returns the achieved latency. It mutates graph.Stmts in place (Idx via
// normalization, StartCycle via every later pass) and owns all derived
// state for the duration of the call.
func Schedule(graph *dfg.DFG, ops []*dfg.Op, clockPeriod float64) (int, error) {
	deps, uses, err := graph.Extract()
	if err != nil {
		return 0, err
	}

	ctx := newSchedulingContext(graph, ops, clockPeriod)
	ctx.deps, ctx.uses = deps, uses

	tlog.Printw("schedule: extracted dependencies", "statements", len(graph.Stmts))

	if err := ctx.normalize(); err != nil {
		return 0, err
	}
	tlog.Printw("schedule: normalized to topological order")

	lAsap := ctx.asap()
	tlog.Printw("schedule: asap pass complete", "l_asap", lAsap)

	lAlap := ctx.alap(lAsap)
	tlog.Printw("schedule: alap pass complete", "l_alap", lAlap)

	priority := make([]int, len(graph.Stmts))
	for i, stmt := range graph.Stmts {
		priority[i] = stmt.StartCycle
	}

	latency, err := ctx.listSchedule(priority)
	if err != nil {
		return 0, err
	}
	tlog.Printw("schedule: list scheduling complete", "latency", latency)

	return latency, nil
}
