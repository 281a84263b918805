package dataflow

import (
	"github.com/cs-au-dk/fixpoint/analysis/cfg"
)

// Fact is the constraint on analysis fact types. Facts are value-semantic:
// meet and transfer produce new facts, and the solver detects
// stabilization with structural equality.
type Fact[F any] interface {
	Eq(F) bool
}

// Analysis is a pluggable intraprocedural dataflow analysis over one CFG.
type Analysis[F Fact[F]] interface {
	// Forward reports the analysis direction.
	Forward() bool
	// BoundaryFact is the fact of the boundary node before solving starts.
	BoundaryFact(g *cfg.CFG) F
	// InitialFact is the fact every non-boundary node starts with.
	InitialFact() F
	// Meet combines two facts flowing into the same node. It must be
	// monotone: increasing either argument never decreases the result.
	Meet(a, b F) F
	// Transfer applies the node's transfer function to its IN fact.
	Transfer(n cfg.Node, in F) F
}

// InterAnalysis is a pluggable interprocedural dataflow analysis over an
// ICFG. Node transfer is split between call sites and ordinary nodes, and
// every fact crossing an edge is first adapted by TransferEdge.
type InterAnalysis[F Fact[F]] interface {
	Forward() bool
	// BoundaryFact is the fact seeded at the entry node of a declared
	// entry method. Callee entries never receive a boundary fact; their
	// facts arrive solely through call edges.
	BoundaryFact(g *cfg.ICFG, entry cfg.Node) F
	InitialFact() F
	Meet(a, b F) F
	// TransferCall is the transfer function of call-site nodes.
	TransferCall(n cfg.Node, in F) F
	// TransferNonCall is the transfer function of every other node.
	TransferNonCall(n cfg.Node, in F) F
	// TransferEdge adapts the source's OUT fact to the edge before it is
	// met into the target's IN fact.
	TransferEdge(e *cfg.Edge, out F) F
}
