// Deterministic names for generated modules and their ports.
package netlist

import "fmt"

// Port and wire names shared by every generated mux and memory module.
const (
	portIn      = "in"
	portOut     = "out"
	portMem     = "mem"
	portMemInv  = "mem_inv"
	portAddr    = "addr"
	portData    = "data"
	portDataInv = "data_inv"
)

// BranchModuleName names the basis module implementing one branch shape of
// a mux: the owning model, the implemented mux size, and the branch fan-in.
func BranchModuleName(model string, muxSize, basis int) string {
	return fmt.Sprintf("%s_size%d_basis%d", model, muxSize, basis)
}

// MemModuleName names the companion memory module of a mux, keyed by the
// number of datapath inputs (the constant rail does not count).
func MemModuleName(model string, datapathSize int) string {
	return fmt.Sprintf("%s_size%d_mem", model, datapathSize)
}

// ModelMemModuleName names the memory module serving the configuration
// ports of a non-mux model.
func ModelMemModuleName(model, storage string) string {
	return fmt.Sprintf("%s_%s_mem", model, storage)
}

// DecoderModuleName names an address decoder by its address width and its
// one-hot output width.
func DecoderModuleName(addrWidth, dataWidth int) string {
	return fmt.Sprintf("decoder%dto%d", addrWidth, dataWidth)
}
