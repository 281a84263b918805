package deadcode

import (
	"sort"

	"github.com/cs-au-dk/fixpoint/analysis/cfg"
	"github.com/cs-au-dk/fixpoint/analysis/constprop"
	"github.com/cs-au-dk/fixpoint/analysis/dataflow"
	"github.com/cs-au-dk/fixpoint/analysis/livevars"
	"github.com/cs-au-dk/fixpoint/ir"
	"github.com/cs-au-dk/fixpoint/utils/worklist"

	"golang.org/x/tools/container/intsets"
)

// ID identifies dead-code detection in configurations and result stores.
// It requires already-computed constant-propagation and live-variable
// results for the same CFG.
const ID = "deadcode"

// Detect reports the dead statements of g, sorted by program order:
// assignments without observable effect whose result is never read,
// branches ruled out by constant conditions, and statements unreachable
// from the entry. Boundary nodes are never reported.
func Detect(
	g *cfg.CFG,
	consts *dataflow.Result[constprop.Fact],
	live *dataflow.Result[livevars.SetFact],
) []ir.Stmt {
	dead := make(map[ir.Stmt]bool)

	for _, n := range g.Nodes() {
		if s, ok := n.(*ir.Assign); ok &&
			sideEffectFree(s.RHS) && !live.OutFactOf(n).Contains(s.LHS) {
			dead[s] = true
		}
	}

	killed := killedEdges(g, consts)

	var visited intsets.Sparse
	worklist.Start(g.Entry(), func(n cfg.Node, add func(cfg.Node)) {
		if !visited.Insert(n.Index() + 1) {
			return
		}
		for _, e := range g.OutEdgesOf(n) {
			if !killed[e] {
				add(e.Target)
			}
		}
	})
	for _, n := range g.Nodes() {
		if s, ok := n.(ir.Stmt); ok && !visited.Has(n.Index()+1) {
			dead[s] = true
		}
	}

	report := make([]ir.Stmt, 0, len(dead))
	for s := range dead {
		report = append(report, s)
	}
	sort.Slice(report, func(i, j int) bool {
		return report[i].Index() < report[j].Index()
	})
	return report
}

// killedEdges marks the out-edges of conditional nodes that a constant
// condition rules out. For a switch, a non-matching case edge is killed,
// and the default edge is killed only when some case label matched: when
// no label matches, the default is the only live successor.
func killedEdges(g *cfg.CFG, consts *dataflow.Result[constprop.Fact]) map[*cfg.Edge]bool {
	killed := make(map[*cfg.Edge]bool)
	for _, n := range g.Nodes() {
		switch s := n.(type) {
		case *ir.If:
			v := constprop.Evaluate(s.Cond, consts.OutFactOf(n))
			if !v.IsConstant() {
				continue
			}
			deadKind := cfg.IfFalse
			if v.Constant() == 0 {
				deadKind = cfg.IfTrue
			}
			for _, e := range g.OutEdgesOf(n) {
				if e.Kind == deadKind {
					killed[e] = true
				}
			}
		case *ir.Switch:
			v := constprop.Evaluate(s.Var, consts.OutFactOf(n))
			if !v.IsConstant() {
				continue
			}
			matched := false
			for _, e := range g.OutEdgesOf(n) {
				if e.Kind != cfg.SwitchCase {
					continue
				}
				if e.CaseValue == v.Constant() {
					matched = true
				} else {
					killed[e] = true
				}
			}
			if matched {
				for _, e := range g.OutEdgesOf(n) {
					if e.Kind == cfg.SwitchDefault {
						killed[e] = true
					}
				}
			}
		}
	}
	return killed
}

// sideEffectFree reports whether evaluating e has no observable effect.
// Allocation, casts, field and array accesses, and division or remainder
// can raise or touch the heap; everything else is pure.
func sideEffectFree(e ir.Exp) bool {
	switch e := e.(type) {
	case *ir.NewExp, *ir.CastExp, *ir.FieldAccess, *ir.ArrayAccess:
		return false
	case *ir.BinaryExp:
		return e.Op != ir.Div && e.Op != ir.Rem
	}
	return true
}
