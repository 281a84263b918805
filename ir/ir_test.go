package ir

import "testing"

func TestCanHoldInt(t *testing.T) {
	tests := []struct {
		typ  Type
		want bool
	}{
		{Boolean, true},
		{Byte, true},
		{Char, true},
		{Short, true},
		{Int, true},
		{Long, false},
		{Float, false},
		{Double, false},
		{Void, false},
		{ClassType{Name: "Main"}, false},
	}
	for _, test := range tests {
		if got := CanHoldInt(test.typ); got != test.want {
			t.Errorf("CanHoldInt(%s) = %v, want %v", test.typ, got, test.want)
		}
	}
}

func TestVarsOf(t *testing.T) {
	x := &Var{Name: "x", Type: Int}
	y := &Var{Name: "y", Type: Int}
	a := &Var{Name: "a", Type: ClassType{Name: "Arr"}}

	tests := []struct {
		exp  Exp
		want []*Var
	}{
		{&IntLiteral{Value: 1}, nil},
		{x, []*Var{x}},
		{&BinaryExp{Op: Add, X: x, Y: y}, []*Var{x, y}},
		{&CastExp{Type: Int, Operand: x}, []*Var{x}},
		{&ArrayAccess{Base: a, Index: y}, []*Var{a, y}},
		{&FieldAccess{Base: a, Field: "len"}, []*Var{a}},
		{&FieldAccess{Class: "Main", Field: "counter"}, nil},
		{&NewExp{Class: "Main"}, nil},
		{&InvokeExp{Kind: Static, Class: "C", Method: "f", Args: []Exp{x, &IntLiteral{Value: 2}, y}}, []*Var{x, y}},
	}
	for _, test := range tests {
		got := VarsOf(test.exp)
		if len(got) != len(test.want) {
			t.Errorf("VarsOf(%s) = %v, want %v", test.exp, got, test.want)
			continue
		}
		for i := range got {
			if got[i] != test.want[i] {
				t.Errorf("VarsOf(%s)[%d] = %s, want %s", test.exp, i, got[i], test.want[i])
			}
		}
	}
}

func TestMethodIndicesAndSubsignature(t *testing.T) {
	x := &Var{Name: "x", Type: Int}
	body := []Stmt{
		&Assign{LHS: x, RHS: &IntLiteral{Value: 1}},
		&Return{Value: x},
	}
	m := NewMethod("Main", "run", []*Var{x}, Int, body)

	for i, s := range m.Body {
		if s.Index() != i {
			t.Errorf("statement %d has index %d", i, s.Index())
		}
	}
	if got := m.Subsignature(); got != "run/1" {
		t.Errorf("subsignature %q, want run/1", got)
	}
	if vals := m.ReturnValues(); len(vals) != 1 || vals[0] != Exp(x) {
		t.Errorf("return values %v", vals)
	}
}

func TestDefsAndUses(t *testing.T) {
	x := &Var{Name: "x", Type: Int}
	call := &InvokeExp{Kind: Static, Class: "C", Method: "f"}

	if d, ok := (&Assign{LHS: x, RHS: &IntLiteral{Value: 1}}).Def(); !ok || d != x {
		t.Errorf("assign def = %v, %v", d, ok)
	}
	if _, ok := (&Invoke{Call: call}).Def(); ok {
		t.Error("result-less invoke reports a def")
	}
	if d, ok := (&Invoke{Result: x, Call: call}).Def(); !ok || d != x {
		t.Errorf("invoke def = %v, %v", d, ok)
	}
	if _, ok := (&Return{Value: x}).Def(); ok {
		t.Error("return reports a def")
	}
	if uses := (&Return{}).Uses(); len(uses) != 0 {
		t.Errorf("bare return uses %v", uses)
	}
}

func TestOpFromString(t *testing.T) {
	for op, s := range opStrings {
		got, ok := OpFromString(s)
		if !ok || got != op {
			t.Errorf("OpFromString(%q) = %v, %v", s, got, ok)
		}
	}
	if _, ok := OpFromString("??"); ok {
		t.Error("OpFromString accepted an unknown operator")
	}
}
