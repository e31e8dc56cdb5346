// Mux branch synthesis: one pass-gate instance per realized routing edge.
package netlist

import (
	"fmt"
	"io"

	"github.com/fpgakit/muxgen/circuit"
	"github.com/fpgakit/muxgen/module"
	"github.com/fpgakit/muxgen/muxgraph"
	"github.com/fpgakit/muxgen/muxlib"
)

// WriteMuxModules synthesizes the branch modules of every registered mux,
// in library creation order, into one output stream.
//
// CMOS muxes decompose into their unique basis shapes and one module is
// emitted per shape. Resistive muxes are skipped: configuration lives in
// the datapath and there is nothing discrete to synthesize. Any other
// technology value is a fatal configuration error. Pass-gate bindings that
// are primitive 2-input mux gates are atomic standard cells and produce no
// structural body either.
//
// The pass-gate primitive must already be registered as a module (see
// RegisterModelModule); a missing primitive is the caller's ordering bug
// and surfaces as module.ErrModuleNotFound.
func WriteMuxModules(w io.Writer, mgr *module.Manager, circuits *circuit.Library,
	muxes *muxlib.Library, opts ...Option) error {

	o := buildOptions(opts)
	if err := FileHeader(w, "Multiplexers"); err != nil {
		return err
	}
	for _, id := range muxes.Muxes() {
		model, err := muxes.Model(id)
		if err != nil {
			return err
		}
		m, err := circuits.Model(model)
		if err != nil {
			return err
		}
		g, err := muxes.Graph(id)
		if err != nil {
			return err
		}
		switch m.Tech {
		case circuit.TechCMOS:
			if err = writeCMOSMuxBranches(w, mgr, circuits, m, g, o); err != nil {
				return err
			}
		case circuit.TechResistive:
			// Nothing to synthesize.
		default:
			return fmt.Errorf("mux model %q technology %q: %w", m.Name, m.Tech, ErrUnsupportedTechnology)
		}
	}

	return nil
}

// writeCMOSMuxBranches emits one module per unique branch shape of g.
func writeCMOSMuxBranches(w io.Writer, mgr *module.Manager, circuits *circuit.Library,
	m circuit.Model, g *muxgraph.MuxGraph, o Options) error {

	tg, err := circuits.Model(m.PassGate)
	if err != nil {
		return err
	}
	if tg.Kind == circuit.KindGate && tg.Gate == circuit.GateMux2 {
		// Primitive 2:1 cells come from the standard-cell library as-is.
		return nil
	}
	for _, branch := range g.BuildBranchGraphs() {
		name := BranchModuleName(m.Name, g.NumInputs(), branch.NumInputs())
		if err = writeBranchModule(w, mgr, circuits, m, tg, name, branch, o); err != nil {
			return err
		}
	}

	return nil
}

// writeBranchModule registers and emits one basis module. Each realized
// input->output edge becomes one pass-gate instance; the edge's invert
// flag swaps the plain and inverted memory rails on the gate's select
// pins, the same flag value the bitstream decoder asserts against.
func writeBranchModule(w io.Writer, mgr *module.Manager, circuits *circuit.Library,
	m, tg circuit.Model, name string, branch *muxgraph.MuxGraph, o Options) error {

	tgIn, err := circuits.PortsByKind(m.PassGate, circuit.PortInput, false)
	if err != nil {
		return err
	}
	tgOut, err := circuits.PortsByKind(m.PassGate, circuit.PortOutput, false)
	if err != nil {
		return err
	}
	if len(tgIn) != 3 || len(tgOut) != 1 {
		return fmt.Errorf("pass-gate %q has %d inputs and %d outputs: %w",
			tg.Name, len(tgIn), len(tgOut), ErrBadPassGate)
	}
	tgModule := mgr.FindModule(tg.Name)
	if !tgModule.Valid() {
		return fmt.Errorf("pass-gate module %q: %w", tg.Name, module.ErrModuleNotFound)
	}
	if branch.NumOutputs() != 1 || branch.NumLevels() != 1 {
		return fmt.Errorf("branch %q has %d outputs and %d levels: %w",
			name, branch.NumOutputs(), branch.NumLevels(), muxgraph.ErrUnsupportedTopology)
	}

	id, err := mgr.AddModule(name)
	if err != nil {
		return err
	}
	globals, err := circuits.GlobalPortsByKind(m.PassGate, circuit.PortInput)
	if err != nil {
		return err
	}
	for _, gp := range globals {
		if err = mgr.AddPort(id, module.Port{Name: gp.Name, Width: gp.Width, Direction: module.DirGlobal}); err != nil {
			return err
		}
	}
	for _, p := range []module.Port{
		{Name: portIn, Width: branch.NumInputs(), Direction: module.DirInput},
		{Name: portOut, Width: branch.NumOutputs(), Direction: module.DirOutput},
		{Name: portMem, Width: branch.NumMemBits(), Direction: module.DirInput},
		{Name: portMemInv, Width: branch.NumMemBits(), Direction: module.DirInput},
	} {
		if err = mgr.AddPort(id, p); err != nil {
			return err
		}
	}

	if err = Comment(w, "Structural Verilog: "+name); err != nil {
		return err
	}
	if err = ModuleDeclaration(w, mgr, id); err != nil {
		return err
	}

	explicit := o.ExplicitPortMap || tg.ExplicitPortMap
	instIdx := 0
	for _, in := range branch.Inputs() {
		for _, out := range branch.Outputs() {
			edges, err := branch.FindEdges(in, out)
			if err != nil {
				return err
			}
			if len(edges) == 0 {
				continue
			}
			if len(edges) > 1 {
				return fmt.Errorf("branch %q input %d: %d parallel edges: %w",
					name, in, len(edges), muxgraph.ErrUnsupportedTopology)
			}
			e, err := branch.Edge(edges[0])
			if err != nil {
				return err
			}
			sel, selb := module.Bit(portMem, int(e.Mem)), module.Bit(portMemInv, int(e.Mem))
			if e.UseInvertedMem {
				sel, selb = selb, sel
			}
			conns := map[string]module.BitSlice{
				tgIn[0].Name:  module.Bit(portIn, int(in)),
				tgIn[1].Name:  sel,
				tgIn[2].Name:  selb,
				tgOut[0].Name: module.Bit(portOut, int(out)),
			}
			inst, err := Instance(w, mgr, tgModule, fmt.Sprintf("%s_%d_", tg.Name, instIdx), conns, explicit)
			if err != nil {
				return err
			}
			if err = mgr.AddChildModule(id, inst); err != nil {
				return err
			}
			instIdx++
		}
	}

	return ModuleEnd(w, name)
}
