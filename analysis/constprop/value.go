package constprop

import (
	"strconv"

	"github.com/cs-au-dk/fixpoint/utils"

	"github.com/fatih/color"
)

var colorize = struct {
	Element func(...interface{}) string
}{
	Element: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
}

// Value is a member of the constant propagation lattice:
//
//	Undef ⊑ Constant(i) ⊑ NAC
//
// for every i, with distinct constants incomparable. The lattice height is
// 3, so a variable's value can rise at most twice during solving.
type Value struct {
	kind valueKind
	c    int
}

type valueKind uint8

const (
	undef valueKind = iota
	constant
	nac
)

// Undef is the bottom element: no information has reached the variable.
func Undef() Value { return Value{} }

// NAC is the top element: the variable is not a constant.
func NAC() Value { return Value{kind: nac} }

// MakeConstant produces the lattice member for a known constant.
func MakeConstant(c int) Value { return Value{kind: constant, c: c} }

func (v Value) IsUndef() bool    { return v.kind == undef }
func (v Value) IsConstant() bool { return v.kind == constant }
func (v Value) IsNAC() bool      { return v.kind == nac }

// Constant returns the concrete constant. Panics on non-constant members.
func (v Value) Constant() int {
	if v.kind != constant {
		panic("constprop: Constant() on a non-constant Value")
	}
	return v.c
}

func (v Value) String() string {
	switch v.kind {
	case undef:
		return colorize.Element("UNDEF")
	case nac:
		return colorize.Element("NAC")
	default:
		return colorize.Element(strconv.Itoa(v.c))
	}
}

// Leq reports v ⊑ w.
func (v Value) Leq(w Value) bool {
	switch {
	case v.kind == undef, w.kind == nac:
		return true
	default:
		return v == w
	}
}

// MeetValue combines the values of one variable arriving along two paths.
func MeetValue(a, b Value) Value {
	switch {
	case a.kind == nac || b.kind == nac:
		return NAC()
	case a.kind == undef:
		return b
	case b.kind == undef:
		return a
	case a.c == b.c:
		return a
	default:
		return NAC()
	}
}
