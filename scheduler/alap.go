package scheduler

// alap computes the maximum start cycle of every statement such that the
// total latency is still lAsap (spec.md §4.4), scanning in reverse
// (topological) order, then renormalizes so the minimum start cycle is
// exactly 1. It returns the realized latency, which equals lAsap.
func (c *schedulingContext) alap(lAsap int) int {
	stmts := c.stmts()
	n := len(stmts)
	earliest := lAsap

	for i := n - 1; i >= 0; i-- {
		stmt := stmts[i]
		if len(c.uses[i]) == 0 {
			stmt.StartCycle = lAsap - stmt.Op.OccupiedCycles()
		} else {
			latest := lAsap
			for _, s := range c.uses[i] {
				succ := stmts[s]
				latest = minInt(latest, succ.StartCycle-maxInt(stmt.Op.Latency, 1))
			}
			stmt.StartCycle = latest
		}
		earliest = minInt(earliest, stmt.StartCycle)
	}

	shift := earliest - 1
	latency := 0
	for _, stmt := range stmts {
		stmt.StartCycle -= shift
		latency = maxInt(latency, stmt.StartCycle+stmt.Op.OccupiedCycles())
	}

	return latency
}
