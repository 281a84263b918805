package ir

import "fmt"

// BinOp enumerates the binary operators of the IR: arithmetic, comparison,
// shift and bitwise.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	Rem

	Eq
	Ne
	Lt
	Gt
	Le
	Ge

	Shl
	Shr
	UShr

	And
	Or
	Xor
)

var opStrings = map[BinOp]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Rem: "%",
	Eq: "==", Ne: "!=", Lt: "<", Gt: ">", Le: "<=", Ge: ">=",
	Shl: "<<", Shr: ">>", UShr: ">>>",
	And: "&", Or: "|", Xor: "^",
}

var opsByString = func() map[string]BinOp {
	m := make(map[string]BinOp, len(opStrings))
	for op, s := range opStrings {
		m[s] = op
	}
	return m
}()

func (op BinOp) String() string {
	if s, ok := opStrings[op]; ok {
		return s
	}
	panic(fmt.Sprintf("unknown binary operator %d", int(op)))
}

// OpFromString maps an operator token to its BinOp.
func OpFromString(s string) (BinOp, bool) {
	op, ok := opsByString[s]
	return op, ok
}

// IsComparison reports whether op yields a boolean (0/1) result.
func (op BinOp) IsComparison() bool {
	switch op {
	case Eq, Ne, Lt, Gt, Le, Ge:
		return true
	}
	return false
}

// CallKind classifies how a call site selects its target.
type CallKind int

const (
	Static CallKind = iota
	Special
	Virtual
	Interface
	Dynamic
	Other
)

func (k CallKind) String() string {
	switch k {
	case Static:
		return "static"
	case Special:
		return "special"
	case Virtual:
		return "virtual"
	case Interface:
		return "interface"
	case Dynamic:
		return "dynamic"
	case Other:
		return "other"
	}
	panic(fmt.Sprintf("unknown call kind %d", int(k)))
}

// CallKindFromString maps a call-kind token to its CallKind.
func CallKindFromString(s string) (CallKind, bool) {
	switch s {
	case "static":
		return Static, true
	case "special":
		return Special, true
	case "virtual":
		return Virtual, true
	case "interface":
		return Interface, true
	case "dynamic":
		return Dynamic, true
	case "other":
		return Other, true
	}
	return 0, false
}
