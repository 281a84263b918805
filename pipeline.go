package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/cs-au-dk/fixpoint/analysis/callgraph"
	"github.com/cs-au-dk/fixpoint/analysis/cfg"
	"github.com/cs-au-dk/fixpoint/analysis/constprop"
	"github.com/cs-au-dk/fixpoint/analysis/dataflow"
	"github.com/cs-au-dk/fixpoint/analysis/deadcode"
	"github.com/cs-au-dk/fixpoint/analysis/livevars"
	"github.com/cs-au-dk/fixpoint/config"
	"github.com/cs-au-dk/fixpoint/ir"
	"github.com/cs-au-dk/fixpoint/loader"
	"github.com/cs-au-dk/fixpoint/utils"
)

// pipeline holds everything one run computes. Intraprocedural results are
// per reachable method; analyses later in the run reuse results computed
// earlier instead of solving twice.
type pipeline struct {
	conf  *config.Config
	hier  *ir.Hierarchy
	entry *ir.Method
	cg    *callgraph.Graph
	icfg  *cfg.ICFG

	consts map[*ir.Method]*dataflow.Result[constprop.Fact]
	live   map[*ir.Method]*dataflow.Result[livevars.SetFact]
	inter  *dataflow.Result[constprop.Fact]
}

func run(conf *config.Config) error {
	hier, err := loader.LoadFile(conf.ProgramPath())
	if err != nil {
		return err
	}
	entry, err := loader.EntryMethod(hier, conf.Entry)
	if err != nil {
		return err
	}

	log.Println("Building call graph from", color.CyanString(entry.String()))
	cg := callgraph.BuildCHA(hier, entry)
	utils.VerbosePrint("Call graph: %d reachable methods, %d edges\n",
		len(cg.Reachable()), len(cg.Edges()))

	pl := &pipeline{
		conf:  conf,
		hier:  hier,
		entry: entry,
		cg:    cg,
		icfg:  cfg.BuildICFG(cg),
	}
	for _, id := range conf.Analyses {
		if err := pl.runAnalysis(id); err != nil {
			return err
		}
	}
	return pl.exportDot()
}

func (pl *pipeline) runAnalysis(id string) error {
	log.Println("Running", color.CyanString(id))
	switch id {
	case callgraph.ID:
		pl.reportCallGraph()
	case constprop.ID:
		if err := pl.ensureConstants(); err != nil {
			return err
		}
		for _, m := range pl.methods() {
			g, _ := pl.icfg.CFGOf(m)
			reportFacts(m, "constants", g, pl.consts[m])
		}
	case constprop.InterID:
		res, err := dataflow.SolveInter[constprop.Fact](pl.icfg, constprop.NewInter())
		if err != nil {
			return err
		}
		pl.inter = res
		// The ICFG shares its nodes with the per-method CFGs, so the
		// interprocedural result is indexable per method directly.
		for _, m := range pl.methods() {
			g, _ := pl.icfg.CFGOf(m)
			reportFacts(m, "constants", g, res)
		}
	case livevars.ID:
		pl.ensureLiveness()
		for _, m := range pl.methods() {
			g, _ := pl.icfg.CFGOf(m)
			reportFacts(m, "live", g, pl.live[m])
		}
	case deadcode.ID:
		if err := pl.ensureConstants(); err != nil {
			return err
		}
		pl.ensureLiveness()
		for _, m := range pl.methods() {
			g, _ := pl.icfg.CFGOf(m)
			pl.reportDeadCode(m, deadcode.Detect(g, pl.consts[m], pl.live[m]))
		}
	default:
		return fmt.Errorf("unknown analysis %q", id)
	}
	return nil
}

// methods returns the reachable methods with bodies, in discovery order.
func (pl *pipeline) methods() []*ir.Method {
	var ms []*ir.Method
	for _, m := range pl.cg.Reachable() {
		if !m.Abstract {
			ms = append(ms, m)
		}
	}
	return ms
}

func (pl *pipeline) ensureConstants() error {
	if pl.consts != nil {
		return nil
	}
	pl.consts = make(map[*ir.Method]*dataflow.Result[constprop.Fact])
	for _, m := range pl.methods() {
		g, _ := pl.icfg.CFGOf(m)
		res, err := dataflow.Solve[constprop.Fact](g, constprop.ConstProp{})
		if err != nil {
			return err
		}
		pl.consts[m] = res
	}
	return nil
}

func (pl *pipeline) ensureLiveness() {
	if pl.live != nil {
		return
	}
	pl.live = make(map[*ir.Method]*dataflow.Result[livevars.SetFact])
	for _, m := range pl.methods() {
		g, _ := pl.icfg.CFGOf(m)
		pl.live[m] = livevars.Analyze(g)
	}
}

func (pl *pipeline) reportCallGraph() {
	fmt.Println("Reachable methods:")
	for _, m := range pl.cg.Reachable() {
		fmt.Println("  " + m.String())
	}
	fmt.Println("Call edges:")
	for _, e := range pl.cg.Edges() {
		fmt.Printf("  %s --%s@%d--> %s\n", e.Caller, e.Kind, e.Site.Index(), e.Callee)
	}
}

// reportFacts prints the OUT fact of every statement of m.
func reportFacts[F fmt.Stringer](m *ir.Method, what string, g *cfg.CFG, res *dataflow.Result[F]) {
	fmt.Printf("%s (%s):\n", m, what)
	for _, n := range g.Nodes() {
		if cfg.IsBoundary(n) {
			continue
		}
		fmt.Printf("  %2d: %-32s %s\n", n.Index(), n, res.OutFactOf(n))
	}
}

func (pl *pipeline) reportDeadCode(m *ir.Method, dead []ir.Stmt) {
	if len(dead) == 0 {
		fmt.Printf("%s: %s\n", m, color.GreenString("no dead code"))
		return
	}
	fmt.Printf("%s:\n", m)
	for _, s := range dead {
		fmt.Printf("  %s %2d: %s\n", color.RedString("dead"), s.Index(), s)
	}
}

func (pl *pipeline) exportDot() error {
	dir := pl.conf.DotPath()
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating dot directory: %w", err)
	}
	files := map[string][]byte{
		"callgraph.dot": pl.cg.Visualize(),
		"icfg.dot":      pl.icfg.Visualize(),
	}
	for _, m := range pl.methods() {
		g, _ := pl.icfg.CFGOf(m)
		files[fmt.Sprintf("cfg-%s.dot", m)] = g.Visualize()
	}
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		utils.VerbosePrint("Wrote %s\n", path)
	}
	return nil
}
