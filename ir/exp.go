package ir

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	// Exp is the closed family of right-hand-side expressions.
	Exp interface {
		fmt.Stringer
		isExp()
	}

	// IntLiteral is an integer constant.
	IntLiteral struct {
		Value int
	}

	// Var is a local variable or formal parameter. Vars are compared by
	// identity; two distinct locals never share a *Var.
	Var struct {
		Name string
		Type Type
	}

	// BinaryExp applies a binary operator to two atomic operands.
	BinaryExp struct {
		Op BinOp
		X  Exp
		Y  Exp
	}

	// NewExp allocates an instance of a class.
	NewExp struct {
		Class string
	}

	// CastExp casts an operand to a target type.
	CastExp struct {
		Type    Type
		Operand Exp
	}

	// FieldAccess reads a field of a base object or class. Base is the
	// local holding the instance; a static access has no Base and names
	// the class instead.
	FieldAccess struct {
		Base  *Var
		Class string
		Field string
	}

	// ArrayAccess reads an element of an array variable.
	ArrayAccess struct {
		Base  *Var
		Index Exp
	}

	// InvokeExp is the callee reference and argument list of a call site.
	InvokeExp struct {
		Kind   CallKind
		Class  string
		Method string
		Args   []Exp
	}
)

func (*IntLiteral) isExp()  {}
func (*Var) isExp()         {}
func (*BinaryExp) isExp()   {}
func (*NewExp) isExp()      {}
func (*CastExp) isExp()     {}
func (*FieldAccess) isExp() {}
func (*ArrayAccess) isExp() {}
func (*InvokeExp) isExp()   {}

func (e *IntLiteral) String() string { return strconv.Itoa(e.Value) }
func (v *Var) String() string        { return v.Name }

func (e *BinaryExp) String() string {
	return fmt.Sprintf("%s %s %s", e.X, e.Op, e.Y)
}

func (e *NewExp) String() string { return "new " + e.Class }

func (e *CastExp) String() string {
	return fmt.Sprintf("(%s) %s", e.Type, e.Operand)
}

func (e *FieldAccess) String() string {
	if e.Base != nil {
		return e.Base.Name + "." + e.Field
	}
	return e.Class + "." + e.Field
}

func (e *ArrayAccess) String() string {
	return fmt.Sprintf("%s[%s]", e.Base, e.Index)
}

func (e *InvokeExp) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("call %s %s.%s(%s)",
		e.Kind, e.Class, e.Method, strings.Join(args, ", "))
}

// Subsignature identifies the invoked method for dispatch purposes.
// The IR has no overloading, so name and arity suffice.
func (e *InvokeExp) Subsignature() string {
	return fmt.Sprintf("%s/%d", e.Method, len(e.Args))
}

// VarsOf collects the variables read by exp.
func VarsOf(exp Exp) []*Var {
	switch e := exp.(type) {
	case *Var:
		return []*Var{e}
	case *BinaryExp:
		return append(VarsOf(e.X), VarsOf(e.Y)...)
	case *CastExp:
		return VarsOf(e.Operand)
	case *FieldAccess:
		if e.Base != nil {
			return []*Var{e.Base}
		}
		return nil
	case *ArrayAccess:
		return append([]*Var{e.Base}, VarsOf(e.Index)...)
	case *InvokeExp:
		var vs []*Var
		for _, a := range e.Args {
			vs = append(vs, VarsOf(a)...)
		}
		return vs
	}
	return nil
}
