package dfg

// Stmt is one scheduled operation instance. Idx is its position in the
// DFG's statement sequence and is mutated in place by topological
// normalization; StartCycle is mutated in place by the scheduler. Reads is
// the opaque auxiliary data the DFG carries for Extract: the indices of
// the statements whose values this statement consumes.
type Stmt struct {
	Idx        int
	Op         *Op
	StartCycle int
	Reads      []int
}
