package dataflow

import (
	"github.com/cs-au-dk/fixpoint/analysis/cfg"
)

// Result maps every node of one solver run to its IN and OUT facts. A
// Result is owned by the solver invocation that created it and is
// read-only once solving returns.
type Result[F any] struct {
	in  map[cfg.Node]F
	out map[cfg.Node]F
}

func NewResult[F any]() *Result[F] {
	return &Result[F]{
		in:  make(map[cfg.Node]F),
		out: make(map[cfg.Node]F),
	}
}

// InFactOf returns the fact holding immediately before n.
func (r *Result[F]) InFactOf(n cfg.Node) F {
	return r.in[n]
}

// OutFactOf returns the fact holding immediately after n.
func (r *Result[F]) OutFactOf(n cfg.Node) F {
	return r.out[n]
}

// SetInFact installs the IN fact of n. Solver-side API.
func (r *Result[F]) SetInFact(n cfg.Node, f F) {
	r.in[n] = f
}

// SetOutFact installs the OUT fact of n. Solver-side API.
func (r *Result[F]) SetOutFact(n cfg.Node, f F) {
	r.out[n] = f
}
