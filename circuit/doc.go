// Package circuit defines the read-only circuit-model fact records consumed
// by the multiplexer generation core, and the Library that registers them.
//
// What:
//
//   - Model describes one design-technology primitive: a multiplexer, a
//     pass-gate, a storage (configuration-memory) cell, or a plain gate.
//   - Each Model declares its design technology (CMOS or resistive), whether
//     a multiplexer reserves its last input as a hard-wired constant, whether
//     its configuration bits are driven through a local address encoder, and
//     its named, typed ports.
//   - Library deduplicates models by name and hands out stable ModelIDs.
//
// Why:
//
//   - The mux-graph builder, the bitstream generator and the netlist
//     synthesizer all key their behavior off these facts; keeping them in one
//     immutable registry guarantees the two backends read identical answers.
//
// Errors:
//
//   - ErrDuplicateModel: a model with the same name was already registered.
//   - ErrModelNotFound: a ModelID or name does not resolve to a model.
//   - ErrInvalidModel: a model record violates a structural constraint
//     (e.g. a mux without a pass-gate binding).
//
// The Library is write-once-per-name / read-many: built during architecture
// loading, read-only for the rest of the generation run.
package circuit
