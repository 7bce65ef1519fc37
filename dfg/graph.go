package dfg

import "fmt"

// DFG is an ordered sequence of statements. The sequence is mutable and is
// reordered in place by topological normalization.
type DFG struct {
	Stmts []*Stmt
}

// Extract derives deps and uses from each statement's Reads field, per the
// external-collaborator contract the core scheduler requires: deps[i] lists
// every index j such that i consumes a value produced by j; uses is the
// transpose. It rejects self-loops and out-of-range indices before the
// core ever sees the graph.
func (g *DFG) Extract() (deps, uses [][]int, err error) {
	n := len(g.Stmts)
	deps = make([][]int, n)
	uses = make([][]int, n)

	for i, stmt := range g.Stmts {
		for _, j := range stmt.Reads {
			if j < 0 || j >= n {
				return nil, nil, fmt.Errorf("statement %d reads out-of-range index %d", i, j)
			}
			if j == i {
				return nil, nil, fmt.Errorf("statement %d has a self-loop", i)
			}
			deps[i] = append(deps[i], j)
			uses[j] = append(uses[j], i)
		}
	}

	return deps, uses, nil
}
