package constprop

import (
	"testing"

	"github.com/cs-au-dk/fixpoint/ir"
)

func TestMeetValue(t *testing.T) {
	tests := []struct {
		a, b, want Value
	}{
		{Undef(), Undef(), Undef()},
		{Undef(), MakeConstant(3), MakeConstant(3)},
		{MakeConstant(3), Undef(), MakeConstant(3)},
		{Undef(), NAC(), NAC()},
		{MakeConstant(3), MakeConstant(3), MakeConstant(3)},
		{MakeConstant(3), MakeConstant(4), NAC()},
		{MakeConstant(3), NAC(), NAC()},
		{NAC(), MakeConstant(3), NAC()},
		{NAC(), NAC(), NAC()},
	}
	for _, test := range tests {
		if got := MeetValue(test.a, test.b); got != test.want {
			t.Errorf("MeetValue(%s, %s) = %s, want %s", test.a, test.b, got, test.want)
		}
	}
}

func TestMeetValueProperties(t *testing.T) {
	elems := []Value{
		Undef(), NAC(),
		MakeConstant(-1), MakeConstant(0), MakeConstant(1), MakeConstant(42),
	}
	for _, a := range elems {
		if got := MeetValue(a, a); got != a {
			t.Errorf("meet not idempotent: MeetValue(%s, %s) = %s", a, a, got)
		}
		for _, b := range elems {
			ab, ba := MeetValue(a, b), MeetValue(b, a)
			if ab != ba {
				t.Errorf("meet not commutative: %s vs %s for (%s, %s)", ab, ba, a, b)
			}
			// The result never holds more information than either
			// argument: both are below it in the lattice order.
			if !a.Leq(ab) || !b.Leq(ab) {
				t.Errorf("MeetValue(%s, %s) = %s is not an upper bound", a, b, ab)
			}
			for _, c := range elems {
				if MeetValue(MeetValue(a, b), c) != MeetValue(a, MeetValue(b, c)) {
					t.Errorf("meet not associative for (%s, %s, %s)", a, b, c)
				}
			}
		}
	}
}

func TestLeq(t *testing.T) {
	tests := []struct {
		a, b Value
		want bool
	}{
		{Undef(), Undef(), true},
		{Undef(), MakeConstant(1), true},
		{Undef(), NAC(), true},
		{MakeConstant(1), MakeConstant(1), true},
		{MakeConstant(1), MakeConstant(2), false},
		{MakeConstant(1), NAC(), true},
		{MakeConstant(1), Undef(), false},
		{NAC(), NAC(), true},
		{NAC(), MakeConstant(1), false},
		{NAC(), Undef(), false},
	}
	for _, test := range tests {
		if got := test.a.Leq(test.b); got != test.want {
			t.Errorf("%s ⊑ %s = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestEvalBinary(t *testing.T) {
	c := MakeConstant
	tests := []struct {
		op         ir.BinOp
		x, y, want Value
	}{
		{ir.Add, c(2), c(3), c(5)},
		{ir.Sub, c(2), c(3), c(-1)},
		{ir.Mul, c(4), c(3), c(12)},
		{ir.Div, c(7), c(2), c(3)},
		{ir.Rem, c(7), c(2), c(1)},
		{ir.Eq, c(2), c(2), c(1)},
		{ir.Ne, c(2), c(2), c(0)},
		{ir.Lt, c(1), c(2), c(1)},
		{ir.Gt, c(1), c(2), c(0)},
		{ir.Le, c(2), c(2), c(1)},
		{ir.Ge, c(1), c(2), c(0)},
		{ir.Shl, c(1), c(4), c(16)},
		{ir.Shr, c(-8), c(1), c(-4)},
		{ir.UShr, c(-1), c(28), c(15)},
		{ir.And, c(6), c(3), c(2)},
		{ir.Or, c(6), c(3), c(7)},
		{ir.Xor, c(6), c(3), c(5)},

		// One NAC operand poisons the result.
		{ir.Add, NAC(), c(3), NAC()},
		{ir.Mul, c(3), NAC(), NAC()},
		// An Undef operand gives Undef unless the other is NAC.
		{ir.Add, Undef(), c(3), Undef()},
		{ir.Add, NAC(), Undef(), NAC()},

		// Division and remainder by a constant zero cannot produce a
		// value on any concrete execution, regardless of the dividend.
		{ir.Div, c(3), c(0), Undef()},
		{ir.Rem, c(3), c(0), Undef()},
		{ir.Div, NAC(), c(0), Undef()},
		{ir.Rem, NAC(), c(0), Undef()},
		{ir.Div, Undef(), c(0), Undef()},
	}
	for _, test := range tests {
		if got := evalBinary(test.op, test.x, test.y); got != test.want {
			t.Errorf("evalBinary(%s, %s, %s) = %s, want %s",
				test.op, test.x, test.y, got, test.want)
		}
	}
}

func TestFactCanonical(t *testing.T) {
	x := &ir.Var{Name: "x", Type: ir.Int}

	f := NewFact().Update(x, MakeConstant(1))
	if got := f.Get(x); got != MakeConstant(1) {
		t.Fatalf("Get(x) = %s, want 1", got)
	}

	// Binding Undef is the same as removing: facts stay canonical so
	// structural equality is exact.
	g := f.Update(x, Undef())
	if g.Size() != 0 {
		t.Errorf("fact after Update(x, Undef) has %d entries", g.Size())
	}
	if !g.Eq(NewFact()) {
		t.Errorf("fact %s not equal to the empty fact", g)
	}

	// The original fact is unaffected.
	if got := f.Get(x); got != MakeConstant(1) {
		t.Errorf("persistent fact mutated: Get(x) = %s", got)
	}
}
