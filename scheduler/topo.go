package scheduler

import "github.com/Friedrichqi/hlschedule/dfg"

// isTopological reports whether deps[i] already lies entirely within
// [0, i) for every i — invariant 1 of spec.md §3.
func isTopological(deps [][]int) bool {
	for i, ds := range deps {
		for _, j := range ds {
			if j >= i {
				return false
			}
		}
	}
	return true
}

// normalize reorders c.graph.Stmts into a topological order of the
// dependency DAG (Kahn's algorithm, FIFO tie-break), rewriting deps, uses,
// and each statement's Idx to match. It is a no-op when the order is
// already topological, making repeated calls idempotent.
func (c *schedulingContext) normalize() error {
	if isTopological(c.deps) {
		return nil
	}

	stmts := c.stmts()
	n := len(stmts)

	indeg := make([]int, n)
	for i, ds := range c.deps {
		indeg[i] = len(ds)
	}

	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, n)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		order = append(order, cur)
		for _, succ := range c.uses[cur] {
			indeg[succ]--
			if indeg[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if len(order) < n {
		remaining := make([]int, 0, n-len(order))
		seen := make(map[int]struct{}, len(order))
		for _, i := range order {
			seen[i] = struct{}{}
		}
		for i := 0; i < n; i++ {
			if _, ok := seen[i]; !ok {
				remaining = append(remaining, i)
			}
		}
		return &CycleError{Remaining: remaining}
	}

	oldToNew := make([]int, n)
	reordered := make([]*dfg.Stmt, n)
	for newIdx, oldIdx := range order {
		oldToNew[oldIdx] = newIdx
		reordered[newIdx] = stmts[oldIdx]
	}

	newDeps := make([][]int, n)
	newUses := make([][]int, n)
	for newIdx, oldIdx := range order {
		newDeps[newIdx] = translate(c.deps[oldIdx], oldToNew)
		newUses[newIdx] = translate(c.uses[oldIdx], oldToNew)
	}

	for newIdx, stmt := range reordered {
		stmt.Idx = newIdx
		c.graph.Stmts[newIdx] = stmt
	}
	c.deps = newDeps
	c.uses = newUses

	return nil
}

func translate(indices []int, oldToNew []int) []int {
	if len(indices) == 0 {
		return nil
	}
	out := make([]int, len(indices))
	for i, idx := range indices {
		out[i] = oldToNew[idx]
	}
	return out
}
