package callgraph

import (
	"github.com/cs-au-dk/fixpoint/ir"
)

// ID identifies call-graph construction in configurations and result
// stores.
const ID = "cha"

// Edge records that a call site may dispatch to a callee.
type Edge struct {
	Kind   ir.CallKind
	Site   *ir.Invoke
	Caller *ir.Method
	Callee *ir.Method
}

// Graph is a call graph over methods. It grows monotonically during
// construction and is read-only afterwards: a method is reachable iff it
// was discovered on some path from an entry method.
type Graph struct {
	entries   []*ir.Method
	reachable map[*ir.Method]bool
	order     []*ir.Method
	edges     []*Edge
	calleesOf map[*ir.Invoke][]*Edge
	sitesIn   map[*ir.Method][]*ir.Invoke
}

func newGraph(entries []*ir.Method) *Graph {
	return &Graph{
		entries:   entries,
		reachable: make(map[*ir.Method]bool),
		calleesOf: make(map[*ir.Invoke][]*Edge),
		sitesIn:   make(map[*ir.Method][]*ir.Invoke),
	}
}

// Entries returns the declared entry methods.
func (g *Graph) Entries() []*ir.Method {
	return append([]*ir.Method(nil), g.entries...)
}

// Contains reports whether m has been marked reachable.
func (g *Graph) Contains(m *ir.Method) bool {
	return g.reachable[m]
}

// Reachable returns the reachable methods in discovery order.
func (g *Graph) Reachable() []*ir.Method {
	return append([]*ir.Method(nil), g.order...)
}

// Edges returns all call edges in insertion order.
func (g *Graph) Edges() []*Edge {
	return append([]*Edge(nil), g.edges...)
}

// CalleesOf returns the resolved targets of a call site.
func (g *Graph) CalleesOf(site *ir.Invoke) []*ir.Method {
	callees := make([]*ir.Method, 0, len(g.calleesOf[site]))
	for _, e := range g.calleesOf[site] {
		callees = append(callees, e.Callee)
	}
	return callees
}

// CallSitesIn returns the call sites contained in a reachable method.
func (g *Graph) CallSitesIn(m *ir.Method) []*ir.Invoke {
	return g.sitesIn[m]
}

func (g *Graph) addReachable(m *ir.Method) {
	g.reachable[m] = true
	g.order = append(g.order, m)
	g.sitesIn[m] = m.CallSites()
}

func (g *Graph) addEdge(e *Edge) {
	g.edges = append(g.edges, e)
	g.calleesOf[e.Site] = append(g.calleesOf[e.Site], e)
}
