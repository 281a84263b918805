package dataflow

import (
	"github.com/cs-au-dk/fixpoint/analysis/cfg"
	"github.com/cs-au-dk/fixpoint/ir"
	"github.com/cs-au-dk/fixpoint/utils/worklist"
)

// SolveInter computes the least fixed point of a over an ICFG. The shape
// matches the intraprocedural solver, except that facts are adapted per
// edge before the meet, and only the entry nodes of declared entry methods
// are seeded with a boundary fact: callee entries start empty and receive
// information exclusively through call edges.
func SolveInter[F Fact[F]](g *cfg.ICFG, a InterAnalysis[F]) (*Result[F], error) {
	if !a.Forward() {
		return nil, ErrBackward
	}

	entries := make(map[cfg.Node]bool)
	for _, m := range g.EntryMethods() {
		entries[g.EntryOf(m)] = true
	}

	res := NewResult[F]()
	for _, n := range g.Nodes() {
		if entries[n] {
			res.SetInFact(n, a.BoundaryFact(g, n))
		} else {
			res.SetInFact(n, a.InitialFact())
		}
		res.SetOutFact(n, a.InitialFact())
	}

	worklist.StartV(g.Nodes(), func(n cfg.Node, add func(cfg.Node)) {
		in := res.InFactOf(n)
		for _, e := range g.InEdgesOf(n) {
			in = a.Meet(a.TransferEdge(e, res.OutFactOf(e.Source)), in)
		}
		res.SetInFact(n, in)

		var out F
		if _, ok := n.(*ir.Invoke); ok {
			out = a.TransferCall(n, in)
		} else {
			out = a.TransferNonCall(n, in)
		}
		if !out.Eq(res.OutFactOf(n)) {
			res.SetOutFact(n, out)
			for _, s := range g.SuccsOf(n) {
				add(s)
			}
		}
	})
	return res, nil
}
