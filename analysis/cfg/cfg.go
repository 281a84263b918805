package cfg

import (
	"fmt"

	"github.com/cs-au-dk/fixpoint/ir"
)

// CFG is the control-flow graph of one method body. Nodes are the method's
// statements plus synthetic entry/exit markers; edges are typed with an
// EdgeKind.
type CFG struct {
	method *ir.Method
	entry  *Boundary
	exit   *Boundary
	nodes  []Node
	ins    map[Node][]*Edge
	outs   map[Node][]*Edge
}

// New builds the CFG of m. Branch targets must lie within [0, len(body)];
// target len(body) denotes the method exit. Malformed bodies are the
// loader's responsibility and trip a panic here.
func New(m *ir.Method) *CFG {
	g := &CFG{
		method: m,
		entry:  &Boundary{method: m, index: -1},
		exit:   &Boundary{method: m, exit: true, index: len(m.Body)},
		ins:    make(map[Node][]*Edge),
		outs:   make(map[Node][]*Edge),
	}
	g.nodes = append(g.nodes, g.entry)
	for _, s := range m.Body {
		g.nodes = append(g.nodes, s)
	}
	g.nodes = append(g.nodes, g.exit)

	g.addEdge(&Edge{Kind: Normal, Source: g.entry, Target: g.nodeAt(0)})
	for i, s := range m.Body {
		switch s := s.(type) {
		case *ir.Goto:
			g.addEdge(&Edge{Kind: Normal, Source: s, Target: g.nodeAt(s.Target)})
		case *ir.If:
			g.addEdge(&Edge{Kind: IfTrue, Source: s, Target: g.nodeAt(s.Target)})
			g.addEdge(&Edge{Kind: IfFalse, Source: s, Target: g.nodeAt(i + 1)})
		case *ir.Switch:
			for _, c := range s.Cases {
				g.addEdge(&Edge{
					Kind:      SwitchCase,
					Source:    s,
					Target:    g.nodeAt(c.Target),
					CaseValue: c.Value,
				})
			}
			g.addEdge(&Edge{Kind: SwitchDefault, Source: s, Target: g.nodeAt(s.Default)})
		case *ir.Return:
			g.addEdge(&Edge{Kind: Normal, Source: s, Target: g.exit})
		default:
			g.addEdge(&Edge{Kind: Normal, Source: s, Target: g.nodeAt(i + 1)})
		}
	}
	return g
}

func (g *CFG) nodeAt(target int) Node {
	body := g.method.Body
	switch {
	case target == len(body):
		return g.exit
	case 0 <= target && target < len(body):
		return body[target]
	}
	panic(fmt.Sprintf("branch target %d out of range in %s", target, g.method))
}

func (g *CFG) addEdge(e *Edge) {
	g.outs[e.Source] = append(g.outs[e.Source], e)
	g.ins[e.Target] = append(g.ins[e.Target], e)
}

func (g *CFG) Method() *ir.Method { return g.method }
func (g *CFG) Entry() Node        { return g.entry }
func (g *CFG) Exit() Node         { return g.exit }

// Nodes returns all nodes in program order: entry, statements, exit.
func (g *CFG) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

func (g *CFG) InEdgesOf(n Node) []*Edge  { return g.ins[n] }
func (g *CFG) OutEdgesOf(n Node) []*Edge { return g.outs[n] }

func (g *CFG) PredsOf(n Node) []Node {
	preds := make([]Node, 0, len(g.ins[n]))
	for _, e := range g.ins[n] {
		preds = append(preds, e.Source)
	}
	return preds
}

func (g *CFG) SuccsOf(n Node) []Node {
	succs := make([]Node, 0, len(g.outs[n]))
	for _, e := range g.outs[n] {
		succs = append(succs, e.Target)
	}
	return succs
}
