package cfg

import (
	"github.com/cs-au-dk/fixpoint/analysis/callgraph"
	"github.com/cs-au-dk/fixpoint/ir"
)

// ICFG is the interprocedural CFG: the per-method CFGs of every reachable
// method, stitched together at call sites. A call site keeps a
// call-to-return edge to its return site and gains a call edge into each
// callee entry; each callee exit gains a return edge back to the return
// site.
type ICFG struct {
	cfgs      map[*ir.Method]*CFG
	entries   []*ir.Method
	nodes     []Node
	ins       map[Node][]*Edge
	outs      map[Node][]*Edge
	container map[Node]*ir.Method
}

// BuildICFG assembles the ICFG of every method reachable in cg.
func BuildICFG(cg *callgraph.Graph) *ICFG {
	g := &ICFG{
		cfgs:      make(map[*ir.Method]*CFG),
		entries:   cg.Entries(),
		ins:       make(map[Node][]*Edge),
		outs:      make(map[Node][]*Edge),
		container: make(map[Node]*ir.Method),
	}

	for _, m := range cg.Reachable() {
		if m.Abstract {
			continue
		}
		mg := New(m)
		g.cfgs[m] = mg
		for _, n := range mg.Nodes() {
			g.nodes = append(g.nodes, n)
			g.container[n] = m
		}
		for _, n := range mg.Nodes() {
			for _, e := range mg.OutEdgesOf(n) {
				g.addEdge(g.adoptEdge(e))
			}
		}
	}

	for _, m := range cg.Reachable() {
		if _, ok := g.cfgs[m]; !ok {
			continue
		}
		for _, site := range cg.CallSitesIn(m) {
			for _, callee := range cg.CalleesOf(site) {
				cgph, ok := g.cfgs[callee]
				if !ok {
					continue
				}
				g.addEdge(&Edge{
					Kind:   Call,
					Source: site,
					Target: cgph.Entry(),
					Callee: callee,
				})
				for _, ctr := range g.outs[site] {
					if ctr.Kind != CallToReturn {
						continue
					}
					g.addEdge(&Edge{
						Kind:      Return,
						Source:    cgph.Exit(),
						Target:    ctr.Target,
						CallSite:  site,
						RetValues: callee.ReturnValues(),
					})
				}
			}
		}
	}
	return g
}

// adoptEdge lifts an intraprocedural edge into the ICFG. Normal successor
// edges of call sites become call-to-return edges; the value produced by
// the call flows via the return edge instead.
func (g *ICFG) adoptEdge(e *Edge) *Edge {
	if _, ok := e.Source.(*ir.Invoke); ok && e.Kind == Normal {
		return &Edge{Kind: CallToReturn, Source: e.Source, Target: e.Target}
	}
	return e
}

func (g *ICFG) addEdge(e *Edge) {
	g.outs[e.Source] = append(g.outs[e.Source], e)
	g.ins[e.Target] = append(g.ins[e.Target], e)
}

// Nodes returns every ICFG node, grouped per method in program order.
func (g *ICFG) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

// EntryMethods returns the declared entry methods.
func (g *ICFG) EntryMethods() []*ir.Method {
	return append([]*ir.Method(nil), g.entries...)
}

// CFGOf returns the intraprocedural CFG of a reachable method.
func (g *ICFG) CFGOf(m *ir.Method) (*CFG, bool) {
	mg, ok := g.cfgs[m]
	return mg, ok
}

// EntryOf returns the entry node of a method's CFG.
func (g *ICFG) EntryOf(m *ir.Method) Node {
	return g.cfgs[m].Entry()
}

// ExitOf returns the exit node of a method's CFG.
func (g *ICFG) ExitOf(m *ir.Method) Node {
	return g.cfgs[m].Exit()
}

// ContainingMethodOf maps a node back to the method that contains it.
func (g *ICFG) ContainingMethodOf(n Node) *ir.Method {
	return g.container[n]
}

func (g *ICFG) InEdgesOf(n Node) []*Edge  { return g.ins[n] }
func (g *ICFG) OutEdgesOf(n Node) []*Edge { return g.outs[n] }

func (g *ICFG) SuccsOf(n Node) []Node {
	succs := make([]Node, 0, len(g.outs[n]))
	for _, e := range g.outs[n] {
		succs = append(succs, e.Target)
	}
	return succs
}

func (g *ICFG) PredsOf(n Node) []Node {
	preds := make([]Node, 0, len(g.ins[n]))
	for _, e := range g.ins[n] {
		preds = append(preds, e.Source)
	}
	return preds
}
