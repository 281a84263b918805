package dataflow

import (
	"errors"

	"github.com/cs-au-dk/fixpoint/analysis/cfg"
	"github.com/cs-au-dk/fixpoint/utils/worklist"
)

// ErrBackward is returned when a backward analysis is handed to the
// forward-only solver. Callers needing a backward analysis must drive
// their own iteration or reverse the graph first.
var ErrBackward = errors.New("dataflow: backward solving is not supported")

// Solve computes the least fixed point of a over g with a FIFO worklist:
// IN[n] is the meet of the predecessors' OUT facts and OUT[n] the transfer
// of IN[n]. Termination follows from the finite height of the fact
// lattice and the monotonicity of meet and transfer.
func Solve[F Fact[F]](g *cfg.CFG, a Analysis[F]) (*Result[F], error) {
	if !a.Forward() {
		return nil, ErrBackward
	}

	res := NewResult[F]()
	for _, n := range g.Nodes() {
		if n == g.Entry() {
			res.SetInFact(n, a.BoundaryFact(g))
		} else {
			res.SetInFact(n, a.InitialFact())
		}
		res.SetOutFact(n, a.InitialFact())
	}

	worklist.StartV(g.Nodes(), func(n cfg.Node, add func(cfg.Node)) {
		in := res.InFactOf(n)
		for _, p := range g.PredsOf(n) {
			in = a.Meet(res.OutFactOf(p), in)
		}
		res.SetInFact(n, in)

		out := a.Transfer(n, in)
		if !out.Eq(res.OutFactOf(n)) {
			res.SetOutFact(n, out)
			for _, s := range g.SuccsOf(n) {
				add(s)
			}
		}
	})
	return res, nil
}
