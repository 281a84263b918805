package dot

import (
	"bytes"
	"fmt"
	"sort"
)

// Graph is a minimal builder for dot documents. CFG, ICFG and call-graph
// exports all go through it; rendering to images is left to the dot
// executable.
type Graph struct {
	name  string
	nodes map[string]node
	order []string
	edges []edge
}

type node struct {
	label string
	shape string
}

type edge struct {
	from, to, label string
}

func NewGraph(name string) *Graph {
	return &Graph{
		name:  name,
		nodes: make(map[string]node),
	}
}

// Node declares a node with the given identifier and label. Redeclaring an
// identifier overwrites its label.
func (g *Graph) Node(id, label string) {
	g.node(id, label, "box")
}

// BoundaryNode declares an entry/exit marker node.
func (g *Graph) BoundaryNode(id, label string) {
	g.node(id, label, "ellipse")
}

func (g *Graph) node(id, label, shape string) {
	if _, ok := g.nodes[id]; !ok {
		g.order = append(g.order, id)
	}
	g.nodes[id] = node{label: label, shape: shape}
}

// Edge declares a directed edge with an optional label.
func (g *Graph) Edge(from, to, label string) {
	g.edges = append(g.edges, edge{from, to, label})
}

// Render produces the dot document. Node order is declaration order and
// edges are sorted, so output is deterministic.
func (g *Graph) Render() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", g.name)
	for _, id := range g.order {
		n := g.nodes[id]
		fmt.Fprintf(&buf, "\t%q [label=%q, shape=%s];\n", id, n.label, n.shape)
	}
	es := append([]edge(nil), g.edges...)
	sort.Slice(es, func(i, j int) bool {
		if es[i].from != es[j].from {
			return es[i].from < es[j].from
		}
		if es[i].to != es[j].to {
			return es[i].to < es[j].to
		}
		return es[i].label < es[j].label
	})
	for _, e := range es {
		if e.label == "" {
			fmt.Fprintf(&buf, "\t%q -> %q;\n", e.from, e.to)
		} else {
			fmt.Fprintf(&buf, "\t%q -> %q [label=%q];\n", e.from, e.to, e.label)
		}
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}
