// Companion memory synthesis: storage-cell arrays plus, for local-encoder
// muxes, per-level address decoders. Mux modules expose raw mem/mem_inv
// ports only; everything address-shaped lives here.
package netlist

import (
	"fmt"
	"io"

	"github.com/fpgakit/muxgen/circuit"
	"github.com/fpgakit/muxgen/module"
	"github.com/fpgakit/muxgen/muxgraph"
	"github.com/fpgakit/muxgen/muxlib"
)

// WriteMemoryModules synthesizes configuration-memory modules into one
// output stream: first one module per registered mux (library creation
// order), then one per non-mux model with configuration ports (model
// registration order), so the artifact is reproducible across runs.
//
// CMOS shapes are synthesized; resistive ones are skipped (no discrete
// memory module); any other technology value is fatal. Storage-cell
// primitives must already be registered via RegisterModelModule.
func WriteMemoryModules(w io.Writer, mgr *module.Manager, circuits *circuit.Library,
	muxes *muxlib.Library, opts ...Option) error {

	o := buildOptions(opts)
	if err := FileHeader(w, "Configuration memories"); err != nil {
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
			if err = writeMuxMemModule(w, mgr, circuits, model, m, g, o); err != nil {
				return err
			}
		case circuit.TechResistive:
			// Configuration is embedded in the datapath.
		default:
			return fmt.Errorf("mux model %q technology %q: %w", m.Name, m.Tech, ErrUnsupportedTechnology)
		}
	}
	for _, id := range circuits.Models() {
		m, err := circuits.Model(id)
		if err != nil {
			return err
		}
		if m.Kind == circuit.KindMux {
			continue
		}
		if err = writeModelMemModule(w, mgr, circuits, id, m, o); err != nil {
			return err
		}
	}

	return nil
}

// cells bundles a resolved storage primitive for array emission.
type cells struct {
	model    circuit.Model
	mid      module.ModuleID
	inPorts  []circuit.Port // programming inputs, per cell
	outPorts []circuit.Port // bit and complement
}

// resolveStorage validates a storage-cell binding and its registered module.
func resolveStorage(mgr *module.Manager, circuits *circuit.Library, storage circuit.ModelID) (cells, error) {
	sram, err := circuits.Model(storage)
	if err != nil {
		return cells{}, err
	}
	in, err := circuits.PortsByKind(storage, circuit.PortInput, false)
	if err != nil {
		return cells{}, err
	}
	out, err := circuits.PortsByKind(storage, circuit.PortOutput, false)
	if err != nil {
		return cells{}, err
	}
	if len(in) < 1 || len(out) != 2 {
		return cells{}, fmt.Errorf("storage %q has %d inputs and %d outputs: %w",
			sram.Name, len(in), len(out), ErrBadStorage)
	}
	mid := mgr.FindModule(sram.Name)
	if !mid.Valid() {
		return cells{}, fmt.Errorf("storage module %q: %w", sram.Name, module.ErrModuleNotFound)
	}

	return cells{model: sram, mid: mid, inPorts: in, outPorts: out}, nil
}

// addArrayPorts declares a memory module's interface: the storage cell's
// global ports, its programming inputs widened across numCells cells, and
// the mem/mem_inv output pair.
func (c cells) addArrayPorts(mgr *module.Manager, circuits *circuit.Library,
	storage circuit.ModelID, id module.ModuleID, numCells, memWidth int) error {

	globals, err := circuits.GlobalPortsByKind(storage, circuit.PortInput)
	if err != nil {
		return err
	}
	for _, gp := range globals {
		if err = mgr.AddPort(id, module.Port{Name: gp.Name, Width: gp.Width, Direction: module.DirGlobal}); err != nil {
			return err
		}
	}
	for _, p := range c.inPorts {
		if err = mgr.AddPort(id, module.Port{Name: p.Name, Width: p.Width * numCells, Direction: module.DirInput}); err != nil {
			return err
		}
	}
	for _, p := range []module.Port{
		{Name: portMem, Width: memWidth, Direction: module.DirOutput},
		{Name: portMemInv, Width: memWidth, Direction: module.DirOutput},
	} {
		if err = mgr.AddPort(id, p); err != nil {
			return err
		}
	}

	return nil
}

// emitCell writes storage cell i of the array: programming inputs slice the
// widened buses, the two outputs drive q and qb.
func (c cells) emitCell(w io.Writer, mgr *module.Manager, parent module.ModuleID,
	i int, q, qb module.BitSlice, explicit bool) error {

	conns := map[string]module.BitSlice{
		c.outPorts[0].Name: q,
		c.outPorts[1].Name: qb,
	}
	for _, p := range c.inPorts {
		if p.Width == 1 {
			conns[p.Name] = module.Bit(p.Name, i)
		} else {
			conns[p.Name] = module.BitSlice{Name: p.Name, LSB: i * p.Width, MSB: (i+1)*p.Width - 1}
		}
	}
	inst, err := Instance(w, mgr, c.mid, fmt.Sprintf("%s_%d_", c.model.Name, i), conns,
		explicit || c.model.ExplicitPortMap)
	if err != nil {
		return err
	}

	return mgr.AddChildModule(parent, inst)
}

// writeMuxMemModule registers and emits the memory module of one CMOS mux.
//
// Without a local encoder the module is a flat array: cell i drives
// mem[i]/mem_inv[i]. With a local encoder the cells store binary address
// bits instead, and each multi-bit level gets a decoder instance expanding
// its address to the level's one-hot mem rails. Stored-bit order matches
// the bitstream generator's encoded output bit for bit.
func writeMuxMemModule(w io.Writer, mgr *module.Manager, circuits *circuit.Library,
	id circuit.ModelID, m circuit.Model, g *muxgraph.MuxGraph, o Options) error {

	datapath := g.NumInputs()
	if m.AddConstInput {
		datapath--
	}
	name := MemModuleName(m.Name, datapath)

	storage, err := storageModel(circuits, id, m)
	if err != nil {
		return err
	}
	if !storage.Valid() {
		return fmt.Errorf("mux model %q: %w", m.Name, ErrNoStorageBinding)
	}
	sc, err := resolveStorage(mgr, circuits, storage)
	if err != nil {
		return err
	}

	// Plan the storage-cell array before declaring ports. addrW is zero
	// for pass-through levels (and for the whole plan without an encoder).
	type levelPlan struct {
		mems  []muxgraph.MemID
		addrW int
	}
	var plans []levelPlan
	numCells := g.NumMemBits()
	if m.LocalEncoder {
		numCells = 0
		for l := 0; l < g.NumLevels(); l++ {
			mems, err := g.MemsAtLevel(l)
			if err != nil {
				return err
			}
			p := levelPlan{mems: mems}
			if len(mems) > 1 {
				p.addrW = muxgraph.AddrWidth(len(mems))
			}
			if p.addrW > 0 {
				numCells += p.addrW
			} else {
				numCells++
			}
			plans = append(plans, p)
		}
		// Decoder shapes are shared across memory modules; emit each once.
		for _, p := range plans {
			if p.addrW == 0 {
				continue
			}
			if err = ensureDecoderModule(w, mgr, p.addrW, len(p.mems)); err != nil {
				return err
			}
		}
	}

	mid, err := mgr.AddModule(name)
	if err != nil {
		return err
	}
	if err = sc.addArrayPorts(mgr, circuits, storage, mid, numCells, g.NumMemBits()); err != nil {
		return err
	}
	if err = Comment(w, "Structural Verilog: "+name); err != nil {
		return err
	}
	if err = ModuleDeclaration(w, mgr, mid); err != nil {
		return err
	}

	if !m.LocalEncoder {
		for i := 0; i < numCells; i++ {
			if err = sc.emitCell(w, mgr, mid, i, module.Bit(portMem, i), module.Bit(portMemInv, i), o.ExplicitPortMap); err != nil {
				return err
			}
		}

		return ModuleEnd(w, name)
	}

	cell := 0
	for l, p := range plans {
		if p.addrW == 0 {
			// Single-bit level: stored directly, no decode.
			bit := int(p.mems[0])
			if err = sc.emitCell(w, mgr, mid, cell, module.Bit(portMem, bit), module.Bit(portMemInv, bit), o.ExplicitPortMap); err != nil {
				return err
			}
			cell++
			continue
		}
		wa := fmt.Sprintf("addr_l%d", l)
		wai := wa + "_inv"
		if err = WireDecl(w, wa, p.addrW); err != nil {
			return err
		}
		if err = WireDecl(w, wai, p.addrW); err != nil {
			return err
		}
		for b := 0; b < p.addrW; b++ {
			if err = sc.emitCell(w, mgr, mid, cell, module.Bit(wa, b), module.Bit(wai, b), o.ExplicitPortMap); err != nil {
				return err
			}
			cell++
		}
		dec := mgr.FindModule(DecoderModuleName(p.addrW, len(p.mems)))
		// Level mems are assigned level-major, so the slice is contiguous.
		lo, hi := int(p.mems[0]), int(p.mems[len(p.mems)-1])
		conns := map[string]module.BitSlice{
			portAddr:    module.Bus(wa, p.addrW),
			portData:    {Name: portMem, LSB: lo, MSB: hi},
			portDataInv: {Name: portMemInv, LSB: lo, MSB: hi},
		}
		inst, err := Instance(w, mgr, dec, fmt.Sprintf("decoder_l%d_", l), conns, o.ExplicitPortMap)
		if err != nil {
			return err
		}
		if err = mgr.AddChildModule(mid, inst); err != nil {
			return err
		}
	}

	return ModuleEnd(w, name)
}

// writeModelMemModule emits the memory module backing the configuration
// ports of a non-mux model. Models without configuration ports need none.
func writeModelMemModule(w io.Writer, mgr *module.Manager, circuits *circuit.Library,
	id circuit.ModelID, m circuit.Model, o Options) error {

	total, err := circuits.NumConfigBits(id)
	if err != nil {
		return err
	}
	if total == 0 {
		return nil
	}
	switch m.Tech {
	case circuit.TechCMOS:
	case circuit.TechResistive:
		return nil
	default:
		return fmt.Errorf("model %q technology %q: %w", m.Name, m.Tech, ErrUnsupportedTechnology)
	}
	storage, err := storageModel(circuits, id, m)
	if err != nil {
		return err
	}
	sc, err := resolveStorage(mgr, circuits, storage)
	if err != nil {
		return err
	}
	name := ModelMemModuleName(m.Name, sc.model.Name)
	mid, err := mgr.AddModule(name)
	if err != nil {
		return err
	}
	if err = sc.addArrayPorts(mgr, circuits, storage, mid, total, total); err != nil {
		return err
	}
	if err = Comment(w, "Structural Verilog: "+name); err != nil {
		return err
	}
	if err = ModuleDeclaration(w, mgr, mid); err != nil {
		return err
	}
	for i := 0; i < total; i++ {
		if err = sc.emitCell(w, mgr, mid, i, module.Bit(portMem, i), module.Bit(portMemInv, i), o.ExplicitPortMap); err != nil {
			return err
		}
	}

	return ModuleEnd(w, name)
}

// storageModel resolves the single storage-cell model bound by a model's
// configuration ports. InvalidModelID (with nil error) when the model has
// no configuration ports; ErrNoStorageBinding on unbound or mixed cells.
func storageModel(circuits *circuit.Library, id circuit.ModelID, m circuit.Model) (circuit.ModelID, error) {
	cfg, err := circuits.PortsByKind(id, circuit.PortConfig, true)
	if err != nil {
		return circuit.InvalidModelID, err
	}
	storage := circuit.InvalidModelID
	for _, p := range cfg {
		if !p.Storage.Valid() {
			return circuit.InvalidModelID, fmt.Errorf("model %q port %q: %w", m.Name, p.Name, ErrNoStorageBinding)
		}
		if storage.Valid() && storage != p.Storage {
			return circuit.InvalidModelID, fmt.Errorf("model %q mixes storage cells: %w", m.Name, ErrNoStorageBinding)
		}
		storage = p.Storage
	}

	return storage, nil
}

// ensureDecoderModule registers and emits the address-to-one-hot decoder
// for the given widths. Repeat shapes resolve to the existing module.
// Address bit b carries bit b of the selected position, the same order the
// bitstream generator packs encoded levels in.
func ensureDecoderModule(w io.Writer, mgr *module.Manager, addrW, dataW int) error {
	name := DecoderModuleName(addrW, dataW)
	if mgr.FindModule(name).Valid() {
		return nil
	}
	id, err := mgr.AddModule(name)
	if err != nil {
		return err
	}
	for _, p := range []module.Port{
		{Name: portAddr, Width: addrW, Direction: module.DirInput},
		{Name: portData, Width: dataW, Direction: module.DirOutput},
		{Name: portDataInv, Width: dataW, Direction: module.DirOutput},
	} {
		if err = mgr.AddPort(id, p); err != nil {
			return err
		}
	}
	if err = Comment(w, "Behavioral Verilog: "+name); err != nil {
		return err
	}
	if err = ModuleDeclaration(w, mgr, id); err != nil {
		return err
	}
	for i := 0; i < dataW; i++ {
		lhs := fmt.Sprintf("%s[%d]", portData, i)
		rhs := fmt.Sprintf("(%s == %d'd%d) ? 1'b1 : 1'b0", portAddr, addrW, i)
		if err = Assign(w, lhs, rhs); err != nil {
			return err
		}
	}
	lhs := portData
	inv := portDataInv
	if dataW > 1 {
		lhs = fmt.Sprintf("%s[%d:0]", portData, dataW-1)
		inv = fmt.Sprintf("%s[%d:0]", portDataInv, dataW-1)
	}
	if err = Assign(w, inv, "~"+lhs); err != nil {
		return err
	}

	return ModuleEnd(w, name)
}
