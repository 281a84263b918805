package livevars

import (
	"github.com/cs-au-dk/fixpoint/analysis/cfg"
	"github.com/cs-au-dk/fixpoint/analysis/dataflow"
	"github.com/cs-au-dk/fixpoint/ir"
	"github.com/cs-au-dk/fixpoint/utils/worklist"
)

// ID identifies live-variable analysis in configurations and result
// stores.
const ID = "livevars"

// Analyze computes, for every node of g, the variables live before (IN)
// and after (OUT) the node:
//
//	OUT[n] = union of IN over successors
//	IN[n]  = uses(n) ∪ (OUT[n] \ def(n))
//
// The shared solver is forward-only by contract, so the analysis drives
// its own backward worklist pass.
func Analyze(g *cfg.CFG) *dataflow.Result[SetFact] {
	res := dataflow.NewResult[SetFact]()
	for _, n := range g.Nodes() {
		res.SetInFact(n, NewSetFact())
		res.SetOutFact(n, NewSetFact())
	}

	worklist.StartV(g.Nodes(), func(n cfg.Node, add func(cfg.Node)) {
		out := res.OutFactOf(n)
		for _, s := range g.SuccsOf(n) {
			out = out.Union(res.InFactOf(s))
		}
		res.SetOutFact(n, out)

		in := out
		if s, ok := n.(ir.Stmt); ok {
			if d, ok := s.Def(); ok {
				in = in.Remove(d)
			}
			for _, u := range s.Uses() {
				for _, v := range ir.VarsOf(u) {
					in = in.Add(v)
				}
			}
		}
		if !in.Eq(res.InFactOf(n)) {
			res.SetInFact(n, in)
			for _, p := range g.PredsOf(n) {
				add(p)
			}
		}
	})
	return res
}
