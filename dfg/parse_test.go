package dfg

import (
	"strings"
	"testing"
)

const sampleGraph = `{
	"clock_period": 10,
	"ops": [
		{"name": "add", "latency": 1, "delay": 2, "limit": -1},
		{"name": "mul", "latency": 2, "delay": 3, "limit": 1}
	],
	"statements": [
		{"op": "add", "reads": []},
		{"op": "mul", "reads": [0]},
		{"op": "add", "reads": [0, 1]}
	]
}`

func TestDecodeSampleGraph(t *testing.T) {
	doc, err := decode(strings.NewReader(sampleGraph))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.ClockPeriod != 10 {
		t.Fatalf("ClockPeriod = %v, want 10", doc.ClockPeriod)
	}
	if len(doc.Ops) != 2 {
		t.Fatalf("len(Ops) = %d, want 2", len(doc.Ops))
	}
	if len(doc.Graph.Stmts) != 3 {
		t.Fatalf("len(Stmts) = %d, want 3", len(doc.Graph.Stmts))
	}
	if doc.Graph.Stmts[1].Op.Name != "mul" {
		t.Fatalf("Stmts[1].Op.Name = %q, want mul", doc.Graph.Stmts[1].Op.Name)
	}
	if got := doc.Graph.Stmts[2].Reads; len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("Stmts[2].Reads = %v, want [0 1]", got)
	}
}

func TestDecodeRejectsDuplicateOpName(t *testing.T) {
	const doc = `{
		"clock_period": 10,
		"ops": [
			{"name": "add", "latency": 1, "delay": 0, "limit": -1},
			{"name": "add", "latency": 2, "delay": 0, "limit": -1}
		],
		"statements": []
	}`

	if _, err := decode(strings.NewReader(doc)); err == nil {
		t.Fatalf("expected an error for a duplicate op name, got nil")
	}
}

func TestDecodeRejectsUnknownOpReference(t *testing.T) {
	const doc = `{
		"clock_period": 10,
		"ops": [
			{"name": "add", "latency": 1, "delay": 0, "limit": -1}
		],
		"statements": [
			{"op": "sub", "reads": []}
		]
	}`

	if _, err := decode(strings.NewReader(doc)); err == nil {
		t.Fatalf("expected an error for an unknown op reference, got nil")
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	if _, err := decode(strings.NewReader("{not json")); err == nil {
		t.Fatalf("expected an error for malformed JSON, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/graph.json"); err == nil {
		t.Fatalf("expected an error for a missing file, got nil")
	}
}
