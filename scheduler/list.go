package scheduler

import (
	"container/heap"
	"fmt"

	"github.com/Friedrichqi/hlschedule/dfg"
)

// readyQueue is a container/heap priority queue of statement indices,
// ordered by ascending ALAP priority and, for ties, descending op delay
// (spec.md §4.5's "Setup" paragraph).
type readyQueue struct {
	items    []int
	priority []int
	delay    []float64
}

func (q *readyQueue) Len() int { return len(q.items) }

func (q *readyQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if q.priority[a] != q.priority[b] {
		return q.priority[a] < q.priority[b]
	}
	return q.delay[a] > q.delay[b]
}

func (q *readyQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *readyQueue) Push(x interface{}) { q.items = append(q.items, x.(int)) }

func (q *readyQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

// checkFeasibility rejects, before the main loop starts, the two
// infeasible configurations spec.md's design notes call out: a limited
// kind with no slots at all while statements of that kind exist, and an
// unlimited kind whose own delay already exceeds the clock period.
func (c *schedulingContext) checkFeasibility() error {
	used := make(map[*dfg.Op]bool, len(c.ops))
	for _, stmt := range c.stmts() {
		used[stmt.Op] = true
	}

	for _, op := range c.ops {
		if !used[op] {
			continue
		}
		if op.Unlimited() {
			if op.Delay > c.clockPeriod {
				return &InfeasibleError{Op: op.Name, Reason: fmt.Sprintf("delay %g exceeds clock period %g", op.Delay, c.clockPeriod)}
			}
		} else if op.Limit == 0 {
			return &InfeasibleError{Op: op.Name, Reason: "limit is zero but statements of this kind exist"}
		}
	}
	return nil
}

// listSchedule runs the resource-and-timing-constrained list scheduler of
// spec.md §4.5, using priority (snapshotted ALAP start cycles) as the ready
// queue's ordering key. It returns the achieved latency.
func (c *schedulingContext) listSchedule(priority []int) (int, error) {
	if err := c.checkFeasibility(); err != nil {
		return 0, err
	}

	stmts := c.stmts()
	n := len(stmts)

	delay := make([]float64, n)
	maxLatency := 1
	for i, stmt := range stmts {
		delay[i] = stmt.Op.Delay
		stmt.StartCycle = 0
		maxLatency = maxInt(maxLatency, stmt.Op.Latency)
	}
	// Every statement can wait at most n resource-blocked attempts of at
	// most maxLatency cycles each before the resource it needs frees up;
	// this bound is generous on purpose, it exists only to turn a true
	// scheduler bug into a panic instead of a silent hang.
	deadlockBound := n*(maxLatency+1) + 16

	scheduled := make(map[int]bool, n)
	pending := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		pending[i] = true
	}

	rq := &readyQueue{priority: priority, delay: delay}
	heap.Init(rq)
	for i := 0; i < n; i++ {
		if len(c.deps[i]) == 0 {
			delete(pending, i)
			heap.Push(rq, i)
		}
	}

	// delayAccum[cycle][i] is the accumulated combinational delay of any
	// chain of delay-only predecessors feeding statement i within cycle.
	delayAccum := make(map[int]map[int]float64)
	accumOf := func(cycle, i int) float64 {
		return delayAccum[cycle][i]
	}
	bumpAccum := func(cycle, i int, v float64) {
		m := delayAccum[cycle]
		if m == nil {
			m = make(map[int]float64)
			delayAccum[cycle] = m
		}
		if v > m[i] {
			m[i] = v
		}
	}

	inFlight := func(cycle int, op *dfg.Op) int {
		count := 0
		for j := range scheduled {
			s := stmts[j]
			if s.Op == op && s.StartCycle <= cycle && cycle < s.StartCycle+s.Op.Latency {
				count++
			}
		}
		return count
	}

	cycle := 1
	for len(scheduled) < n {
		var deferred []int

		for rq.Len() > 0 {
			i := heap.Pop(rq).(int)
			stmt := stmts[i]
			op := stmt.Op

			if op.Unlimited() {
				u := accumOf(cycle, i)
				if u+op.Delay <= c.clockPeriod {
					stmt.StartCycle = cycle
					scheduled[i] = true
					for _, s := range c.uses[i] {
						bumpAccum(cycle, s, u+op.Delay)
					}
				} else {
					deferred = append(deferred, i)
				}
				continue
			}

			// inFlight is checked against scheduled, which is updated as
			// soon as a statement is placed (not deferred to the end of
			// the cycle's drain), so two same-kind statements issued in
			// the same cycle correctly see each other against the limit.
			if inFlight(cycle, op) < op.Limit {
				stmt.StartCycle = cycle
				scheduled[i] = true
				for _, s := range c.uses[i] {
					if stmts[s].Op.Unlimited() {
						bumpAccum(cycle+op.Latency-1, s, op.Delay)
					}
				}
				continue
			}

			deferred = append(deferred, i)
			break
		}

		for _, i := range deferred {
			heap.Push(rq, i)
		}

		var newlyReady []int
		for i := range pending {
			ready := true
			for _, j := range c.deps[i] {
				pred := stmts[j]
				if !scheduled[j] || pred.StartCycle+maxInt(pred.Op.Latency, 1) > cycle+1 {
					ready = false
					break
				}
			}
			if ready {
				newlyReady = append(newlyReady, i)
			}
		}
		for _, i := range newlyReady {
			delete(pending, i)
			heap.Push(rq, i)
		}

		cycle++
		if cycle > deadlockBound {
			panic("list scheduler made no progress within a bounded number of cycles; this indicates a cycle or internal invariant violation that normalization should have caught")
		}
	}

	latency := 0
	for _, stmt := range stmts {
		latency = maxInt(latency, stmt.StartCycle+stmt.Op.OccupiedCycles())
	}
	return latency, nil
}
