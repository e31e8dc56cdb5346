// Primitive registration: circuit models as instanceable library modules.
package netlist

import (
	"github.com/fpgakit/muxgen/circuit"
	"github.com/fpgakit/muxgen/module"
)

// RegisterModelModule registers a circuit model (pass-gate, storage cell,
// any primitive a generated module instances) as a module whose ports
// mirror the model's declaration. Idempotent: an already-registered name
// resolves to its existing id.
func RegisterModelModule(mgr *module.Manager, circuits *circuit.Library, id circuit.ModelID) (module.ModuleID, error) {
	m, err := circuits.Model(id)
	if err != nil {
		return module.InvalidModuleID, err
	}
	if existing := mgr.FindModule(m.Name); existing.Valid() {
		return existing, nil
	}
	mid, err := mgr.AddModule(m.Name)
	if err != nil {
		return module.InvalidModuleID, err
	}
	for _, p := range m.Ports {
		dir := module.DirInput
		switch {
		case p.Kind == circuit.PortOutput:
			dir = module.DirOutput
		case p.Global:
			dir = module.DirGlobal
		}
		if err = mgr.AddPort(mid, module.Port{Name: p.Name, Width: p.Width, Direction: dir}); err != nil {
			return module.InvalidModuleID, err
		}
	}

	return mid, nil
}
