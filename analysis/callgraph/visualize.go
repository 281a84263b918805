package callgraph

import (
	"fmt"

	"github.com/cs-au-dk/fixpoint/utils/dot"
)

// Visualize renders the call graph as a dot document. Edges are labeled
// with the call kind and the site's line index.
func (g *Graph) Visualize() []byte {
	d := dot.NewGraph("callgraph")
	for _, m := range g.Reachable() {
		d.Node(m.String(), m.String())
	}
	for _, e := range g.Edges() {
		d.Edge(e.Caller.String(), e.Callee.String(),
			fmt.Sprintf("%s@%d", e.Kind, e.Site.Index()))
	}
	return d.Render()
}
