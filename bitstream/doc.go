// Package bitstream computes the ordered configuration-bit vector that
// selects one datapath input at a multiplexer instance.
//
// What:
//
//   - Build resolves the requested path (or the model's default path),
//     decodes the raw per-bit vector through the shared mux graph, and, for
//     models with a local encoder, re-encodes each level's one-hot group
//     into a minimal binary address.
//   - FindDefaultPath binds the sentinel "default" request to the
//     implemented structure: the constant rail (last input) when the model
//     has one, input 0 otherwise.
//
// Bit order convention:
//
//   - Encoded level addresses are emitted LSB-first: address bit i carries
//     (position >> i) & 1. The companion memory-module synthesizer applies
//     the same convention, which is what keeps netlist and bitstream
//     consistent; "no selection" encodes position 0.
//
// Technology dispatch:
//
//   - CMOS follows the full recipe. Resistive multiplexers yield an empty
//     vector and no error: a deliberate capability gap, configuration being
//     embedded in the datapath. Any other technology value is a fatal
//     configuration error (ErrUnsupportedTechnology).
//
// Determinism: Build is a pure function of (graph, path, encoder flag);
// the result length depends only on (model, size, encoder flag).
package bitstream
