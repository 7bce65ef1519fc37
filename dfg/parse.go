package dfg

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nikandfor/errors"
)

// opDoc and stmtDoc mirror the JSON graph description documented in
// SPEC_FULL.md §3.1.
type opDoc struct {
	Name    string  `json:"name"`
	Latency int     `json:"latency"`
	Delay   float64 `json:"delay"`
	Limit   int     `json:"limit"`
}

type stmtDoc struct {
	Op    string `json:"op"`
	Reads []int  `json:"reads"`
}

type graphDoc struct {
	ClockPeriod float64   `json:"clock_period"`
	Ops         []opDoc   `json:"ops"`
	Statements  []stmtDoc `json:"statements"`
}

// Document is a decoded graph description: the op catalog, the statement
// sequence, and the clock period, ready to hand to scheduler.Schedule.
type Document struct {
	Ops         []*Op
	Graph       *DFG
	ClockPeriod float64
}

// Load reads and decodes a graph description file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open graph file %s", path)
	}
	defer f.Close()

	doc, err := decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "decode graph file %s", path)
	}
	return doc, nil
}

func decode(r io.Reader) (*Document, error) {
	var raw graphDoc
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "malformed graph document")
	}

	ops := make([]*Op, len(raw.Ops))
	byName := make(map[string]*Op, len(raw.Ops))
	for i, o := range raw.Ops {
		if _, dup := byName[o.Name]; dup {
			return nil, fmt.Errorf("duplicate op name %q", o.Name)
		}
		op := &Op{Name: o.Name, Latency: o.Latency, Delay: o.Delay, Limit: o.Limit}
		ops[i] = op
		byName[o.Name] = op
	}

	stmts := make([]*Stmt, len(raw.Statements))
	for i, s := range raw.Statements {
		op, ok := byName[s.Op]
		if !ok {
			return nil, fmt.Errorf("statement %d references unknown op %q", i, s.Op)
		}
		reads := make([]int, len(s.Reads))
		copy(reads, s.Reads)
		stmts[i] = &Stmt{Idx: i, Op: op, Reads: reads}
	}

	return &Document{
		Ops:         ops,
		Graph:       &DFG{Stmts: stmts},
		ClockPeriod: raw.ClockPeriod,
	}, nil
}
