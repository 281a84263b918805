package callgraph

import (
	"github.com/cs-au-dk/fixpoint/ir"
	"github.com/cs-au-dk/fixpoint/utils/worklist"
)

// BuildCHA constructs the call graph reachable from the entry methods
// using class-hierarchy analysis: call sites are resolved against declared
// types and the subclass/implementor relation only.
func BuildCHA(h *ir.Hierarchy, entries ...*ir.Method) *Graph {
	g := newGraph(entries)
	worklist.StartV(entries, func(m *ir.Method, add func(*ir.Method)) {
		if g.Contains(m) {
			return
		}
		g.addReachable(m)
		for _, site := range g.CallSitesIn(m) {
			for _, callee := range Resolve(h, site) {
				g.addEdge(&Edge{
					Kind:   site.Call.Kind,
					Site:   site,
					Caller: m,
					Callee: callee,
				})
				add(callee)
			}
		}
	})
	return g
}

// Resolve computes the possible targets of a call site under h. An empty
// result is not an error: an interface without implementors simply has no
// callees.
func Resolve(h *ir.Hierarchy, site *ir.Invoke) []*ir.Method {
	cls, ok := h.Class(site.Call.Class)
	if !ok {
		return nil
	}
	subsig := site.Call.Subsignature()

	switch site.Call.Kind {
	case ir.Virtual, ir.Interface:
		// Interface calls resolve exactly like virtual calls: walk the
		// declared class and every transitive subclass and implementor,
		// collecting each concrete match.
		var targets []*ir.Method
		seen := make(map[*ir.Method]bool)
		visited := make(map[*ir.Class]bool)
		worklist.Start(cls, func(c *ir.Class, add func(*ir.Class)) {
			if visited[c] {
				return
			}
			visited[c] = true
			if m, ok := Dispatch(c, subsig); ok && !seen[m] {
				seen[m] = true
				targets = append(targets, m)
			}
			for _, sub := range h.DirectSubclassesOf(c) {
				add(sub)
			}
			for _, impl := range h.DirectImplementorsOf(c) {
				add(impl)
			}
		})
		return targets
	default:
		// Static, special, dynamic and other calls all have at most one
		// target: the dispatch result on the declared class.
		if m, ok := Dispatch(cls, subsig); ok {
			return []*ir.Method{m}
		}
		return nil
	}
}

// Dispatch walks the superclass chain of c for a concrete method matching
// subsig. The walk is iterative; deep hierarchies cost no stack.
func Dispatch(c *ir.Class, subsig string) (*ir.Method, bool) {
	for ; c != nil; c = c.Super {
		for _, m := range c.Methods {
			if !m.Abstract && m.Subsignature() == subsig {
				return m, true
			}
		}
	}
	return nil, false
}
