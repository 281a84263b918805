package constprop

import (
	"github.com/cs-au-dk/fixpoint/analysis/cfg"
	"github.com/cs-au-dk/fixpoint/ir"
)

// ID identifies intraprocedural constant propagation in configurations
// and result stores.
const ID = "constprop"

// ConstProp is intraprocedural constant propagation over integer-typed
// locals. Variables whose type cannot hold an integer are never tracked.
type ConstProp struct{}

func (ConstProp) Forward() bool { return true }

// BoundaryFact binds every trackable formal parameter to NAC: parameters
// are unknown inputs.
func (ConstProp) BoundaryFact(g *cfg.CFG) Fact {
	f := NewFact()
	for _, p := range g.Method().Params {
		if ir.CanHoldInt(p.Type) {
			f = f.Update(p, NAC())
		}
	}
	return f
}

func (ConstProp) InitialFact() Fact {
	return NewFact()
}

// Meet combines facts pointwise per variable.
func (ConstProp) Meet(a, b Fact) Fact {
	a.ForEach(func(v *ir.Var, val Value) {
		if ir.CanHoldInt(v.Type) {
			b = b.Update(v, MeetValue(val, b.Get(v)))
		}
	})
	return b
}

// Transfer kills the defined variable and re-binds it to the abstract
// value of the right-hand side. The right-hand side is evaluated under
// the incoming fact, so self-referential assignments like x = x + 1 see
// the prior value of x. Statements defining nothing (or defining an
// untracked variable) are the identity.
func (ConstProp) Transfer(n cfg.Node, in Fact) Fact {
	s, ok := n.(ir.Stmt)
	if !ok {
		return in
	}
	d, ok := s.Def()
	if !ok || !ir.CanHoldInt(d.Type) {
		return in
	}

	f := in.Remove(d)
	switch s := s.(type) {
	case *ir.Assign:
		return f.Update(d, Evaluate(s.RHS, in))
	case *ir.Invoke:
		return f.Update(d, Evaluate(s.Call, in))
	default:
		return in
	}
}

// Evaluate computes the abstract value of exp under fact in. Expressions
// whose value cannot be tracked (allocation, cast, field or array access,
// method call) are conservatively NAC.
func Evaluate(exp ir.Exp, in Fact) Value {
	switch e := exp.(type) {
	case *ir.IntLiteral:
		return MakeConstant(e.Value)
	case *ir.Var:
		return in.Get(e)
	case *ir.BinaryExp:
		return evalBinary(e.Op, Evaluate(e.X, in), Evaluate(e.Y, in))
	default:
		return NAC()
	}
}

// evalBinary folds a binary operator over two abstract operands. Division
// and remainder by a constant zero yield Undef, not NAC: the dividing
// path cannot produce a value at all.
func evalBinary(op ir.BinOp, x, y Value) Value {
	if (op == ir.Div || op == ir.Rem) && y.IsConstant() && y.Constant() == 0 {
		return Undef()
	}
	switch {
	case x.IsNAC() != y.IsNAC():
		return NAC()
	case x.IsConstant() && y.IsConstant():
		return fold(op, x.Constant(), y.Constant())
	default:
		return Undef()
	}
}

func fold(op ir.BinOp, a, b int) Value {
	boolConst := func(v bool) Value {
		if v {
			return MakeConstant(1)
		}
		return MakeConstant(0)
	}
	switch op {
	case ir.Add:
		return MakeConstant(a + b)
	case ir.Sub:
		return MakeConstant(a - b)
	case ir.Mul:
		return MakeConstant(a * b)
	case ir.Div:
		return MakeConstant(a / b)
	case ir.Rem:
		return MakeConstant(a % b)
	case ir.Eq:
		return boolConst(a == b)
	case ir.Ne:
		return boolConst(a != b)
	case ir.Lt:
		return boolConst(a < b)
	case ir.Gt:
		return boolConst(a > b)
	case ir.Le:
		return boolConst(a <= b)
	case ir.Ge:
		return boolConst(a >= b)
	case ir.Shl:
		return MakeConstant(int(int32(a) << (uint32(b) & 31)))
	case ir.Shr:
		return MakeConstant(int(int32(a) >> (uint32(b) & 31)))
	case ir.UShr:
		return MakeConstant(int(int32(uint32(a) >> (uint32(b) & 31))))
	case ir.And:
		return MakeConstant(a & b)
	case ir.Or:
		return MakeConstant(a | b)
	case ir.Xor:
		return MakeConstant(a ^ b)
	}
	return Undef()
}
