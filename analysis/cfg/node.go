package cfg

import (
	"fmt"

	"github.com/cs-au-dk/fixpoint/ir"
)

// Node is a CFG or ICFG node: either an IR statement or a synthetic
// boundary marker. Nodes are compared by identity.
type Node interface {
	fmt.Stringer
	// Index is the node's position in program order. Entry markers sort
	// before every statement, exit markers after.
	Index() int
}

// Boundary is the synthetic entry or exit marker of one method's CFG.
// Boundary nodes are structural: they never appear in analysis reports.
type Boundary struct {
	method *ir.Method
	exit   bool
	index  int
}

func (b *Boundary) Method() *ir.Method { return b.method }
func (b *Boundary) IsExit() bool       { return b.exit }
func (b *Boundary) Index() int         { return b.index }

func (b *Boundary) String() string {
	if b.exit {
		return fmt.Sprintf("<exit %s>", b.method)
	}
	return fmt.Sprintf("<entry %s>", b.method)
}

// IsBoundary reports whether n is a synthetic entry/exit marker.
func IsBoundary(n Node) bool {
	_, ok := n.(*Boundary)
	return ok
}
