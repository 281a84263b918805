package cfg

import (
	"fmt"

	"github.com/cs-au-dk/fixpoint/ir"
)

// EdgeKind classifies CFG and ICFG edges. The first five kinds occur in
// intraprocedural CFGs; Call, CallToReturn and Return only in the ICFG.
type EdgeKind int

const (
	Normal EdgeKind = iota
	IfTrue
	IfFalse
	SwitchCase
	SwitchDefault
	Call
	CallToReturn
	Return
)

func (k EdgeKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case IfTrue:
		return "if-true"
	case IfFalse:
		return "if-false"
	case SwitchCase:
		return "switch-case"
	case SwitchDefault:
		return "switch-default"
	case Call:
		return "call"
	case CallToReturn:
		return "call-to-return"
	case Return:
		return "return"
	}
	panic(fmt.Sprintf("unknown edge kind %d", int(k)))
}

// Edge is a directed arc between two nodes. Depending on the kind, some
// auxiliary fields are populated:
//
//   - SwitchCase edges carry the case label in CaseValue.
//   - Call edges carry the callee method.
//   - Return edges carry the originating call site and the callee's return
//     operands.
type Edge struct {
	Kind   EdgeKind
	Source Node
	Target Node

	CaseValue int
	Callee    *ir.Method
	CallSite  Node
	RetValues []ir.Exp
}

func (e *Edge) String() string {
	if e.Kind == SwitchCase {
		return fmt.Sprintf("[%s %d] %s -> %s", e.Kind, e.CaseValue, e.Source, e.Target)
	}
	return fmt.Sprintf("[%s] %s -> %s", e.Kind, e.Source, e.Target)
}

// CrossesProcedure reports whether the edge leaves or re-enters a
// procedure.
func (e *Edge) CrossesProcedure() bool {
	return e.Kind == Call || e.Kind == Return
}
