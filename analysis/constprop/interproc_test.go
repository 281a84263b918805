package constprop_test

import (
	"testing"

	"github.com/cs-au-dk/fixpoint/analysis/callgraph"
	"github.com/cs-au-dk/fixpoint/analysis/cfg"
	"github.com/cs-au-dk/fixpoint/analysis/constprop"
	"github.com/cs-au-dk/fixpoint/analysis/dataflow"
	"github.com/cs-au-dk/fixpoint/ir"
	"github.com/cs-au-dk/fixpoint/testutil"
)

func solveInter(t *testing.T, program, entry string) (*ir.Hierarchy, *cfg.ICFG, *dataflow.Result[constprop.Fact]) {
	t.Helper()
	h := testutil.LoadProgram(t, program)
	cg := callgraph.BuildCHA(h, testutil.Method(t, h, entry))
	icfg := cfg.BuildICFG(cg)
	res, err := dataflow.SolveInter[constprop.Fact](icfg, constprop.NewInter())
	if err != nil {
		t.Fatal(err)
	}
	return h, icfg, res
}

const singleCallProgram = `
classes:
  - name: Main
    methods:
      - name: main
        vars: ["int c", "int d"]
        body:
          - "c = 5"
          - "d = call static Main.twice(c)"
          - "c = c + 0"
          - "return d"
      - name: twice
        params: ["int n"]
        vars: ["int r"]
        return: int
        body:
          - "r = n + n"
          - "return r"
`

func TestInterSingleCall(t *testing.T) {
	h, _, res := solveInter(t, singleCallProgram, "Main.main")
	main := testutil.Method(t, h, "Main.main")
	twice := testutil.Method(t, h, "Main.twice")

	c := main.Body[0].(*ir.Assign).LHS
	d := main.Body[1].(*ir.Invoke).Result
	n := twice.Params[0]
	r := twice.Body[0].(*ir.Assign).LHS

	// The call edge binds the callee formal to the argument's value.
	if got := res.OutFactOf(twice.Body[0]).Get(n); got != constprop.MakeConstant(5) {
		t.Errorf("callee n = %s, want 5", got)
	}
	if got := res.OutFactOf(twice.Body[0]).Get(r); got != constprop.MakeConstant(10) {
		t.Errorf("callee r = %s, want 10", got)
	}
	// The return edge binds the call's result at the return site.
	if got := res.OutFactOf(main.Body[2]).Get(d); got != constprop.MakeConstant(10) {
		t.Errorf("caller d = %s, want 10", got)
	}
	// Caller-local state survives around the callee on the
	// call-to-return edge.
	if got := res.OutFactOf(main.Body[2]).Get(c); got != constprop.MakeConstant(5) {
		t.Errorf("caller c = %s, want 5", got)
	}
}

const twoSiteProgram = `
classes:
  - name: Main
    methods:
      - name: main
        vars: ["int a", "int b"]
        body:
          - "a = call static Main.id(7)"
          - "b = call static Main.id(9)"
          - "return"
      - name: id
        params: ["int n"]
        return: int
        body:
          - "return n"
`

func TestInterTwoCallSites(t *testing.T) {
	h, _, res := solveInter(t, twoSiteProgram, "Main.main")
	main := testutil.Method(t, h, "Main.main")
	id := testutil.Method(t, h, "Main.id")

	// Facts from both call sites meet at the callee entry, so neither
	// the formal nor the call results stay a single constant.
	n := id.Params[0]
	if got := res.OutFactOf(id.Body[0]).Get(n); !got.IsNAC() {
		t.Errorf("callee n = %s, want NAC", got)
	}
	a := main.Body[0].(*ir.Invoke).Result
	b := main.Body[1].(*ir.Invoke).Result
	if got := res.OutFactOf(main.Body[2]).Get(a); !got.IsNAC() {
		t.Errorf("a = %s, want NAC", got)
	}
	if got := res.OutFactOf(main.Body[2]).Get(b); !got.IsNAC() {
		t.Errorf("b = %s, want NAC", got)
	}
}

const multiReturnProgram = `
classes:
  - name: Main
    methods:
      - name: main
        params: ["int p"]
        vars: ["int same", "int mixed"]
        body:
          - "same = call static Main.one(p)"
          - "mixed = call static Main.pick(p)"
          - "return"
      - name: one
        params: ["int q"]
        return: int
        body:
          - "if q > 0 goto 2"
          - "return 1"
          - "return 1"
      - name: pick
        params: ["int q"]
        return: int
        body:
          - "if q > 0 goto 2"
          - "return 1"
          - "return 2"
`

func TestInterReturnMerge(t *testing.T) {
	h, _, res := solveInter(t, multiReturnProgram, "Main.main")
	main := testutil.Method(t, h, "Main.main")

	same := main.Body[0].(*ir.Invoke).Result
	mixed := main.Body[1].(*ir.Invoke).Result

	out := res.OutFactOf(main.Body[2])
	// Agreeing return operands keep the constant; disagreeing ones meet
	// to NAC.
	if got := out.Get(same); got != constprop.MakeConstant(1) {
		t.Errorf("same = %s, want 1", got)
	}
	if got := out.Get(mixed); !got.IsNAC() {
		t.Errorf("mixed = %s, want NAC", got)
	}
}

const staleResultProgram = `
classes:
  - name: Main
    methods:
      - name: main
        vars: ["int v"]
        body:
          - "v = 1"
          - "v = call static Main.opaque()"
          - "return v"
      - name: opaque
        vars: ["Main o"]
        return: int
        body:
          - "o = new Main"
          - "return 3"
`

func TestInterCallSiteKill(t *testing.T) {
	h, _, res := solveInter(t, staleResultProgram, "Main.main")
	main := testutil.Method(t, h, "Main.main")
	v := main.Body[0].(*ir.Assign).LHS

	// The pre-call binding v = 1 must not leak around the callee: the
	// value at the return site comes from the return edge alone.
	if got := res.OutFactOf(main.Body[2]).Get(v); got != constprop.MakeConstant(3) {
		t.Errorf("v after call = %s, want 3", got)
	}
}

func TestInterEntryBoundary(t *testing.T) {
	h, icfg, res := solveInter(t, singleCallProgram, "Main.main")
	twice := testutil.Method(t, h, "Main.twice")

	// Only declared entry methods receive a boundary fact: the callee's
	// entry fact comes from the call edge alone, so the formal holds the
	// propagated argument value rather than NAC.
	n := twice.Params[0]
	in := res.InFactOf(icfg.EntryOf(twice))
	if got := in.Get(n); got != constprop.MakeConstant(5) {
		t.Errorf("callee entry n = %s, want 5", got)
	}
}
