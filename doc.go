// Package muxgen generates the configurable multiplexers of an FPGA
// fabric: their routing topologies, their configuration bitstreams, and
// their structural Verilog netlists.
//
// The pipeline is organized under six subpackages:
//
//	circuit/   — circuit-model facts: technologies, kinds, ports, registry
//	muxgraph/  — immutable mux topologies (one-level, tree, multi-level),
//	             path decoding, and branch decomposition
//	muxlib/    — build-once registry of (model, size) mux graphs
//	bitstream/ — per-mux configuration bits, raw or locally encoded
//	module/    — registry of generated modules, ports, and child instances
//	netlist/   — structural Verilog emission for muxes, their memories,
//	             and their local address decoders
//
// Both generation backends read the same graph: the bitstream generator
// decodes a datapath into memory-bit values, the netlist synthesizer turns
// every routing edge into a pass-gate instance, and the shared invert-flag
// on each edge keeps the two in agreement by construction.
//
// All registries are deterministic: dense ids in creation order, never
// renumbered, so generated artifacts are byte-reproducible across runs.
package muxgen
