package dfg

import "testing"

func TestExtractDeriveDepsAndUses(t *testing.T) {
	op := &Op{Name: "add", Latency: 1, Delay: 0, Limit: -1}
	g := &DFG{Stmts: []*Stmt{
		{Idx: 0, Op: op},
		{Idx: 1, Op: op, Reads: []int{0}},
		{Idx: 2, Op: op, Reads: []int{0, 1}},
	}}

	deps, uses, err := g.Extract()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(deps[0]) != 0 {
		t.Fatalf("deps[0] = %v, want empty", deps[0])
	}
	if got := deps[1]; len(got) != 1 || got[0] != 0 {
		t.Fatalf("deps[1] = %v, want [0]", got)
	}
	if got := deps[2]; len(got) != 2 {
		t.Fatalf("deps[2] = %v, want [0 1]", got)
	}

	if got := uses[0]; len(got) != 2 {
		t.Fatalf("uses[0] = %v, want [1 2]", got)
	}
	if got := uses[1]; len(got) != 1 || got[0] != 2 {
		t.Fatalf("uses[1] = %v, want [2]", got)
	}
	if len(uses[2]) != 0 {
		t.Fatalf("uses[2] = %v, want empty", uses[2])
	}
}

func TestExtractRejectsSelfLoop(t *testing.T) {
	op := &Op{Name: "add", Latency: 1, Delay: 0, Limit: -1}
	g := &DFG{Stmts: []*Stmt{
		{Idx: 0, Op: op, Reads: []int{0}},
	}}

	if _, _, err := g.Extract(); err == nil {
		t.Fatalf("expected an error for a self-loop, got nil")
	}
}

func TestExtractRejectsOutOfRangeIndex(t *testing.T) {
	op := &Op{Name: "add", Latency: 1, Delay: 0, Limit: -1}
	g := &DFG{Stmts: []*Stmt{
		{Idx: 0, Op: op, Reads: []int{5}},
	}}

	if _, _, err := g.Extract(); err == nil {
		t.Fatalf("expected an error for an out-of-range read, got nil")
	}
}

func TestOpUnlimitedAndOccupiedCycles(t *testing.T) {
	unlimited := &Op{Name: "add", Latency: 1, Limit: -1}
	if !unlimited.Unlimited() {
		t.Fatalf("expected Unlimited() to be true for Limit -1")
	}
	if unlimited.OccupiedCycles() != 0 {
		t.Fatalf("OccupiedCycles() = %d, want 0", unlimited.OccupiedCycles())
	}

	limited := &Op{Name: "mul", Latency: 3, Limit: 1}
	if limited.Unlimited() {
		t.Fatalf("expected Unlimited() to be false for Limit 1")
	}
	if limited.OccupiedCycles() != 2 {
		t.Fatalf("OccupiedCycles() = %d, want 2", limited.OccupiedCycles())
	}
}
