// Package netlist synthesizes structural Verilog for the multiplexers of a
// device and for their companion configuration-memory modules, walking the
// same mux graphs the bitstream generator decodes.
//
// What:
//
//   - WriteMuxModules emits one module per unique branch (basis) shape of
//     every registered mux: one pass-gate instance per realized
//     input→output edge, with the edge's invert-flag deciding whether the
//     plain or the inverted memory rail drives the gate's select pin. The
//     same flag value feeds the bitstream decode, so netlist polarity and
//     bitstream polarity can never disagree.
//   - WriteMemoryModules emits one companion memory module per mux (and
//     per non-mux model with configuration ports). Mux modules expose raw
//     mem/mem_inv ports only; all local-encoder address decoding lives in
//     the memory module, which keeps alternative configuration-storage
//     schemes substitutable without touching mux synthesis.
//   - RegisterModelModule registers a primitive circuit model (pass-gate,
//     storage cell) as a library module so instances can bind to it.
//
// Emission:
//
//   - Each writer appends sequentially to one output stream per artifact.
//     Port connections render either as explicit by-name maps or as
//     positional lists, selected run-wide (Options) or per model.
//   - Output order follows mux-library creation order, so artifacts are
//     byte-reproducible across runs.
//
// Technology dispatch mirrors the bitstream generator's asymmetry:
// CMOS is synthesized; resistive muxes are skipped (no discrete memory,
// configuration embedded in the datapath); any other technology value is a
// fatal configuration error.
//
// Errors: sentinel values in errors.go; stream failures are wrapped with
// call-site context via github.com/pkg/errors.
package netlist
