package cfg

import (
	"fmt"

	"github.com/cs-au-dk/fixpoint/ir"
	"github.com/cs-au-dk/fixpoint/utils/dot"
)

func nodeID(m *ir.Method, n Node) string {
	return fmt.Sprintf("%s#%d", m, n.Index())
}

func declareNode(g *dot.Graph, m *ir.Method, n Node) {
	id := nodeID(m, n)
	if IsBoundary(n) {
		g.BoundaryNode(id, fmt.Sprintf("%s %s", m, n))
		return
	}
	g.Node(id, fmt.Sprintf("%d: %s", n.Index(), n))
}

func edgeLabel(e *Edge) string {
	if e.Kind == Normal {
		return ""
	}
	if e.Kind == SwitchCase {
		return fmt.Sprintf("case %d", e.CaseValue)
	}
	return e.Kind.String()
}

// Visualize renders the CFG as a dot document.
func (g *CFG) Visualize() []byte {
	d := dot.NewGraph(g.method.String())
	for _, n := range g.Nodes() {
		declareNode(d, g.method, n)
	}
	for _, n := range g.Nodes() {
		for _, e := range g.OutEdgesOf(n) {
			d.Edge(nodeID(g.method, e.Source), nodeID(g.method, e.Target), edgeLabel(e))
		}
	}
	return d.Render()
}

// Visualize renders the whole ICFG as one dot document, with
// interprocedural edges labeled by kind.
func (g *ICFG) Visualize() []byte {
	d := dot.NewGraph("icfg")
	for _, n := range g.Nodes() {
		declareNode(d, g.ContainingMethodOf(n), n)
	}
	for _, n := range g.Nodes() {
		for _, e := range g.OutEdgesOf(n) {
			d.Edge(
				nodeID(g.ContainingMethodOf(e.Source), e.Source),
				nodeID(g.ContainingMethodOf(e.Target), e.Target),
				edgeLabel(e))
		}
	}
	return d.Render()
}
