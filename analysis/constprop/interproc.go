package constprop

import (
	"github.com/cs-au-dk/fixpoint/analysis/cfg"
	"github.com/cs-au-dk/fixpoint/ir"
)

// InterID identifies interprocedural constant propagation.
const InterID = "inter-constprop"

// Inter is interprocedural constant propagation: the intraprocedural
// kernel handles non-call nodes and normal edges, composed with the
// call-site semantics below. A call site contributes two parallel flows
// to its return site, one around the callee (call-to-return) and one
// through it (call then return); the solver's meet combines them.
type Inter struct {
	cp ConstProp
}

func NewInter() Inter { return Inter{} }

func (i Inter) Forward() bool { return i.cp.Forward() }

func (i Inter) BoundaryFact(g *cfg.ICFG, entry cfg.Node) Fact {
	f := NewFact()
	for _, p := range g.ContainingMethodOf(entry).Params {
		if ir.CanHoldInt(p.Type) {
			f = f.Update(p, NAC())
		}
	}
	return f
}

func (i Inter) InitialFact() Fact {
	return i.cp.InitialFact()
}

func (i Inter) Meet(a, b Fact) Fact {
	return i.cp.Meet(a, b)
}

// TransferCall kills the call's defined variable: its actual value
// arrives at the return site via the return edge, not locally.
func (i Inter) TransferCall(n cfg.Node, in Fact) Fact {
	if d, ok := nodeDef(n); ok {
		return in.Remove(d)
	}
	return in
}

func (i Inter) TransferNonCall(n cfg.Node, in Fact) Fact {
	return i.cp.Transfer(n, in)
}

func (i Inter) TransferEdge(e *cfg.Edge, out Fact) Fact {
	switch e.Kind {
	case cfg.CallToReturn:
		// The variable defined at the call site is produced by the
		// return edge; it must not survive around the callee.
		if d, ok := nodeDef(e.Source); ok {
			return out.Remove(d)
		}
		return out
	case cfg.Call:
		// The callee sees only its formal parameters, bound to the
		// values of the actual arguments at the call site.
		site := e.Source.(*ir.Invoke)
		f := NewFact()
		for idx, p := range e.Callee.Params {
			if ir.CanHoldInt(p.Type) {
				f = f.Update(p, Evaluate(site.Call.Args[idx], out))
			}
		}
		return f
	case cfg.Return:
		// The return site learns only the call's defined variable, the
		// meet over every return operand of the callee.
		f := NewFact()
		d, ok := nodeDef(e.CallSite)
		if !ok {
			return f
		}
		v := Undef()
		for _, rv := range e.RetValues {
			v = MeetValue(Evaluate(rv, out), v)
		}
		return f.Update(d, v)
	default:
		return out
	}
}

func nodeDef(n cfg.Node) (*ir.Var, bool) {
	s, ok := n.(ir.Stmt)
	if !ok {
		return nil, false
	}
	d, ok := s.Def()
	if !ok || !ir.CanHoldInt(d.Type) {
		return nil, false
	}
	return d, true
}
