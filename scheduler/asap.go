package scheduler

// asap computes the minimum start cycle of every statement under
// dependency constraints only (spec.md §4.3), in current (topological)
// order, and returns the resulting latency L_ASAP.
func (c *schedulingContext) asap() int {
	stmts := c.stmts()
	lAsap := 0

	for i, stmt := range stmts {
		if len(c.deps[i]) == 0 {
			stmt.StartCycle = 1
		} else {
			start := 0
			for _, j := range c.deps[i] {
				pred := stmts[j]
				ready := pred.StartCycle + pred.Op.OccupiedCycles() + 1
				start = maxInt(start, ready)
			}
			stmt.StartCycle = start
		}
		lAsap = maxInt(lAsap, stmt.StartCycle+stmt.Op.OccupiedCycles())
	}

	return lAsap
}
